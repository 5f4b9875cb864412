// Package tasks implements the task-manager page: a synchronized task
// collection with pessimistic create/complete/delete and derived
// counts.
package tasks

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/view"
)

type Board struct {
	gw      gateway.TaskGateway
	confirm view.Confirmer
	logger  *zap.Logger

	col   view.Collection[domain.Task]
	alert view.Alert
}

// New builds the page state. A nil confirmer approves every prompt,
// which suits non-interactive embedders; interactive surfaces should
// pass one that actually asks.
func New(gw gateway.TaskGateway, confirm view.Confirmer, logger *zap.Logger) *Board {
	if confirm == nil {
		confirm = view.ApproveAll
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board{gw: gw, confirm: confirm, logger: logger}
}

// Load replaces the local collection with the server's. On failure the
// collection stays empty and the error is surfaced once.
func (b *Board) Load(ctx context.Context) error {
	b.col.BeginLoad()
	items, err := b.gw.List(ctx)
	b.col.FinishLoad(items, err)
	if err != nil {
		b.alert.Fail(err.Error())
		return err
	}
	return nil
}

// Add validates the draft and submits it. A blank task text is a
// silent no-op. The entry appears locally only once the server has
// returned the created entity, appended after existing tasks.
func (b *Board) Add(ctx context.Context, draft gateway.TaskDraft) error {
	if strings.TrimSpace(draft.Task) == "" {
		return nil
	}
	if !b.col.BeginSubmit() {
		return nil
	}
	defer b.col.EndSubmit()

	if draft.Priority == "" {
		draft.Priority = domain.PriorityMedium
	}

	created, err := b.gw.Create(ctx, draft)
	if err != nil {
		b.alert.Fail(err.Error())
		return err
	}
	b.col.Append(*created)
	b.alert.Succeed("Task added")
	return nil
}

// Complete flips a task to done, one way only. Already-completed tasks
// are left untouched without a network call, and the local flip happens
// only after the server confirms.
func (b *Board) Complete(ctx context.Context, id string) error {
	existing := b.col.Find(func(t domain.Task) bool { return t.ID == id })
	if existing == nil || existing.Completed {
		return nil
	}

	updated, err := b.gw.Complete(ctx, id)
	if err != nil {
		b.alert.Fail(err.Error())
		return err
	}

	confirmed := *existing
	confirmed.Completed = true
	if updated != nil {
		confirmed = *updated
		confirmed.Completed = true
	}
	b.col.Replace(func(t domain.Task) bool { return t.ID == id }, confirmed)
	b.alert.Succeed("Task marked as completed")
	return nil
}

// Delete removes one task after user confirmation. The local entry
// survives any failure.
func (b *Board) Delete(ctx context.Context, id string) error {
	if !b.confirm("Delete this task?") {
		return nil
	}
	if err := b.gw.Delete(ctx, id); err != nil {
		b.alert.Fail(err.Error())
		return err
	}
	b.col.Remove(func(t domain.Task) bool { return t.ID == id })
	b.alert.Succeed("Task deleted")
	return nil
}

// DeleteAll clears every task after user confirmation. The collection
// empties only on confirmed success.
func (b *Board) DeleteAll(ctx context.Context) error {
	if !b.confirm("Delete ALL tasks?") {
		return nil
	}
	if err := b.gw.DeleteAll(ctx); err != nil {
		b.alert.Fail(err.Error())
		return err
	}
	b.col.Clear()
	b.alert.Succeed("All tasks deleted")
	return nil
}

// Search filters the loaded tasks by text and notes.
func (b *Board) Search(query string) []domain.Task {
	return view.Filter(b.col.Items(), query, func(t domain.Task) []string {
		return []string{t.Task, t.Notes}
	})
}

func (b *Board) Tasks() []domain.Task { return b.col.Items() }
func (b *Board) Phase() view.Phase    { return b.col.Phase() }
func (b *Board) Submitting() bool     { return b.col.Submitting() }
func (b *Board) Alert() *view.Alert   { return &b.alert }

// Completed counts finished tasks.
func (b *Board) Completed() int {
	n := 0
	for _, t := range b.col.Items() {
		if t.Completed {
			n++
		}
	}
	return n
}

// Pending counts unfinished tasks.
func (b *Board) Pending() int {
	return b.col.Len() - b.Completed()
}

// CompletionRatio reports completed/total in [0,1]; 0 when empty.
func (b *Board) CompletionRatio() float64 {
	total := b.col.Len()
	if total == 0 {
		return 0
	}
	return float64(b.Completed()) / float64(total)
}
