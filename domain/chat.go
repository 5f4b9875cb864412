package domain

import "time"

// Chat turn roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single turn in the conversation with the assistant.
// IDs for locally-constructed turns are random UUIDs; history entries
// keep whatever ID the backend recorded.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}
