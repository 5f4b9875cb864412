package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/gateway/rest"
	"github.com/ziggyhome/panel/internal/api"
	"github.com/ziggyhome/panel/internal/config"
	"github.com/ziggyhome/panel/internal/render"
	"github.com/ziggyhome/panel/internal/services/lifecycle"
	"github.com/ziggyhome/panel/pkg/logger"
	"github.com/ziggyhome/panel/view"
	chatView "github.com/ziggyhome/panel/view/chat"
	clockView "github.com/ziggyhome/panel/view/clock"
	dashboardView "github.com/ziggyhome/panel/view/dashboard"
	memoryView "github.com/ziggyhome/panel/view/memorybank"
	notesView "github.com/ziggyhome/panel/view/notes"
	smarthomeView "github.com/ziggyhome/panel/view/smarthome"
	systemView "github.com/ziggyhome/panel/view/system"
	tasksView "github.com/ziggyhome/panel/view/tasks"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	client := api.NewClient(api.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: cfg.Backend.RequestTimeout,
	}, zapLogger)

	taskGW := rest.NewTaskGateway(client)
	memoryGW := rest.NewMemoryGateway(client)
	noteGW := rest.NewNoteGateway(client)
	chatGW := rest.NewChatGateway(client)
	smartGW := rest.NewSmartHomeGateway(client)
	systemGW := rest.NewSystemGateway(client)
	intentGW := rest.NewIntentGateway(client)

	// Prompt input and confirmation prompts share one reader so buffered
	// lines are never swallowed by the wrong consumer.
	stdin := bufio.NewReader(os.Stdin)
	confirm := stdinConfirmer(stdin)

	board := tasksView.New(taskGW, confirm, zapLogger)
	bank := memoryView.New(memoryGW, confirm, zapLogger)
	notebook := notesView.New(noteGW, confirm, zapLogger)
	conversation := chatView.New(chatGW, confirm, zapLogger)
	home := smarthomeView.New(smartGW, cfg.SmartHome.Rooms, zapLogger)
	system := systemView.New(systemGW, intentGW, confirm, zapLogger)
	overview := dashboardView.New(taskGW, memoryGW, systemGW, zapLogger)

	wallClock := clockView.New(systemGW, clockView.Config{
		Tick:   cfg.Clock.TickInterval,
		Resync: cfg.Clock.ResyncInterval,
	}, zapLogger)
	wallClock.Start(appCtx)
	manager.RegisterCloser("clock", wallClock)

	zapLogger.Info("panel started", zap.String("backend", cfg.Backend.BaseURL))

	go runLoop(appCtx, cancel, stdin, panelPages{
		board:        board,
		bank:         bank,
		notebook:     notebook,
		conversation: conversation,
		home:         home,
		system:       system,
		overview:     overview,
		clock:        wallClock,
		historyLimit: cfg.Chat.HistoryLimit,
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

type panelPages struct {
	board        *tasksView.Board
	bank         *memoryView.Bank
	notebook     *notesView.Notebook
	conversation *chatView.Conversation
	home         *smarthomeView.Panel
	system       *systemView.Panel
	overview     *dashboardView.Overview
	clock        *clockView.Clock
	historyLimit int
}

// runLoop drives a minimal command prompt: each command loads one page
// fresh from the backend and prints it. Nothing is cached between
// commands, matching the page-ownership model.
func runLoop(ctx context.Context, quit context.CancelFunc, stdin *bufio.Reader, pages panelPages) {
	fmt.Println("ziggy panel - type help for commands")

	for {
		fmt.Print("> ")
		raw, err := stdin.ReadString('\n')
		if err != nil {
			quit()
			return
		}
		line := strings.TrimSpace(raw)
		cmd, args, _ := strings.Cut(line, " ")

		switch cmd {
		case "":
		case "quit", "exit":
			quit()
			return
		case "help":
			printHelp()
		case "dashboard":
			pages.overview.Load(ctx)
			fmt.Print(render.Dashboard(pages.overview.Stats()))
		case "tasks":
			if pages.board.Load(ctx) == nil {
				fmt.Print(render.Tasks(pages.board.Search(args)))
			}
		case "task":
			taskCommand(ctx, pages.board, args)
		case "memory":
			memoryCommand(ctx, pages.bank, args)
		case "notes":
			if pages.notebook.Load(ctx) == nil {
				fmt.Print(render.Notes(pages.notebook.Search(args)))
			}
		case "note":
			noteCommand(ctx, pages.notebook, args)
		case "chat":
			if args == "" {
				_ = pages.conversation.LoadHistory(ctx, pages.historyLimit)
			} else {
				_ = pages.conversation.Send(ctx, args)
			}
			fmt.Print(render.Chat(pages.conversation.Messages()))
		case "home":
			homeCommand(ctx, pages.home, args)
		case "clock":
			fmt.Print(render.Clock(pages.clock.Snapshot()))
		case "status":
			pages.system.Load(ctx)
			info := pages.system.Info()
			fmt.Printf("%s\n%s %s\n", info.Status, info.Date, info.Time)
		case "restart":
			_ = pages.system.Restart(ctx)
		case "shutdown":
			_ = pages.system.Shutdown(ctx)
		default:
			fmt.Println("unknown command:", cmd)
		}

		drainAlerts(pagesAlerts(pages))
	}
}

func printHelp() {
	fmt.Print(`dashboard                       aggregate overview
tasks [query]                   list or search tasks
task add <text>                 create a task
task done <id>                  mark a task completed
task rm <id>|all                delete one task or every task
memory [query]                  list or search memories
memory set <key> <value>        save or overwrite a memory
memory rm <key>                 delete a memory
notes [query]                   list or search notes
note add <title> | <content>    create a note
note edit <id> <title> | <content>
note rm <id>                    delete a note
chat [message]                  show history, or send a message
home                            refresh and show room sensors
home lights <room>              toggle a room's lights
home ac / home tv               toggle the AC or TV
clock  status  restart  shutdown  quit
`)
}

// Mutations below load the page first so every edit runs against fresh
// server state, matching the fresh-load-on-entry page model.

func taskCommand(ctx context.Context, board *tasksView.Board, args string) {
	sub, arg, _ := strings.Cut(args, " ")
	if board.Load(ctx) != nil {
		return
	}
	switch sub {
	case "add":
		_ = board.Add(ctx, gateway.TaskDraft{Task: arg})
	case "done":
		_ = board.Complete(ctx, arg)
	case "rm":
		if arg == "all" {
			_ = board.DeleteAll(ctx)
		} else {
			_ = board.Delete(ctx, arg)
		}
	default:
		fmt.Println("usage: task add <text> | task done <id> | task rm <id>|all")
		return
	}
	fmt.Print(render.Tasks(board.Tasks()))
}

func memoryCommand(ctx context.Context, bank *memoryView.Bank, args string) {
	sub, arg, _ := strings.Cut(args, " ")
	if bank.Load(ctx) != nil {
		return
	}
	switch sub {
	case "set":
		key, value, _ := strings.Cut(arg, " ")
		_ = bank.Save(ctx, key, value)
		fmt.Print(render.Memories(bank.Memories()))
	case "rm":
		_ = bank.Delete(ctx, arg)
		fmt.Print(render.Memories(bank.Memories()))
	default:
		fmt.Print(render.Memories(bank.Search(args)))
	}
}

func noteCommand(ctx context.Context, notebook *notesView.Notebook, args string) {
	sub, arg, _ := strings.Cut(args, " ")
	if notebook.Load(ctx) != nil {
		return
	}
	switch sub {
	case "add":
		title, content, _ := strings.Cut(arg, " | ")
		_ = notebook.Add(ctx, gateway.NoteDraft{Title: title, Content: content})
	case "edit":
		id, draft, _ := strings.Cut(arg, " ")
		title, content, _ := strings.Cut(draft, " | ")
		_ = notebook.Update(ctx, id, gateway.NoteDraft{Title: title, Content: content})
	case "rm":
		_ = notebook.Delete(ctx, arg)
	default:
		fmt.Println("usage: note add <title> | <content>  ·  note edit <id> <title> | <content>  ·  note rm <id>")
		return
	}
	fmt.Print(render.Notes(notebook.Notes()))
}

func homeCommand(ctx context.Context, home *smarthomeView.Panel, args string) {
	sub, arg, _ := strings.Cut(args, " ")
	switch sub {
	case "lights":
		_ = home.ToggleLights(ctx, arg)
	case "ac":
		_ = home.ToggleAC(ctx)
	case "tv":
		_ = home.ToggleTV(ctx)
	case "":
		home.RefreshSensors(ctx)
		for _, room := range home.Rooms() {
			if climate, ok := home.Climate(room); ok {
				fmt.Print(render.Climate(room, climate))
			}
		}
	default:
		fmt.Println("usage: home | home lights <room> | home ac | home tv")
	}
}

func pagesAlerts(pages panelPages) []*view.Alert {
	return []*view.Alert{
		pages.board.Alert(),
		pages.bank.Alert(),
		pages.notebook.Alert(),
		pages.conversation.Alert(),
		pages.home.Alert(),
		pages.system.Alert(),
	}
}

func drainAlerts(alerts []*view.Alert) {
	for _, alert := range alerts {
		for {
			msg, ok := alert.TakeError()
			if !ok {
				break
			}
			fmt.Println("! " + msg)
		}
		for {
			msg, ok := alert.TakeSuccess()
			if !ok {
				break
			}
			fmt.Println("· " + msg)
		}
	}
}

// stdinConfirmer asks destructive-action prompts on the terminal.
func stdinConfirmer(reader *bufio.Reader) view.Confirmer {
	return func(prompt string) bool {
		fmt.Printf("%s [y/N] ", prompt)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "y" || answer == "yes"
	}
}
