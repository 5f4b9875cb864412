package domain

import "time"

// Priority levels the backend accepts on a task.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Repeat cadences the backend accepts. Empty means a one-shot task.
const (
	RepeatNone    = ""
	RepeatDaily   = "daily"
	RepeatWeekly  = "weekly"
	RepeatMonthly = "monthly"
)

// Task represents a to-do item tracked by the assistant. The ID and
// CreatedAt fields are assigned server-side; completion is one-way.
type Task struct {
	ID        string    `json:"id"`
	Task      string    `json:"task"`
	Priority  string    `json:"priority"`
	Due       string    `json:"due,omitempty"`
	Reminder  string    `json:"reminder,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Repeat    string    `json:"repeat,omitempty"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Completed
}
