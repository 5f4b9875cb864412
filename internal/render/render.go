// Package render turns view state into plain terminal text. Every
// function is a pure formatter; no logic lives here.
package render

import (
	"fmt"
	"strings"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/view/clock"
	"github.com/ziggyhome/panel/view/dashboard"
)

func Tasks(items []domain.Task) string {
	if len(items) == 0 {
		return "no tasks\n"
	}
	var b strings.Builder
	for _, t := range items {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(&b, "%s %-8s %s", mark, t.Priority, t.Task)
		if t.Due != "" {
			fmt.Fprintf(&b, " (due %s)", t.Due)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func Memories(items []domain.Memory) string {
	if len(items) == 0 {
		return "no memories\n"
	}
	var b strings.Builder
	for _, m := range items {
		fmt.Fprintf(&b, "%s = %s\n", m.Key, m.Value)
	}
	return b.String()
}

func Notes(items []domain.Note) string {
	if len(items) == 0 {
		return "no notes\n"
	}
	var b strings.Builder
	for _, n := range items {
		fmt.Fprintf(&b, "## %s\n%s\n\n", n.Title, n.Content)
	}
	return b.String()
}

func Chat(messages []domain.ChatMessage) string {
	var b strings.Builder
	for _, m := range messages {
		name := "you"
		if m.Role == domain.RoleAssistant {
			name = "ziggy"
		}
		fmt.Fprintf(&b, "%s> %s\n", name, m.Content)
	}
	return b.String()
}

func Clock(snap clock.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "local: %s\n", snap.Local.Format("15:04:05"))
	if snap.RemoteTime != "" {
		fmt.Fprintf(&b, "ziggy: %s\n", snap.RemoteTime)
	}
	if snap.RemoteDate != "" {
		fmt.Fprintf(&b, "date:  %s\n", snap.RemoteDate)
	}
	return b.String()
}

func Dashboard(stats dashboard.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tasks:    %d (%d completed, %d pending)\n",
		stats.TotalTasks, stats.CompletedTasks, stats.PendingTasks)
	fmt.Fprintf(&b, "memories: %d\n", stats.Memories)
	fmt.Fprintf(&b, "status:   %s\n", stats.SystemStatus)
	return b.String()
}

func Climate(room string, climate domain.RoomClimate) string {
	return fmt.Sprintf("%-12s temp %s  humidity %s\n",
		room, climate.Temperature, climate.Humidity)
}
