package domain

import "time"

// Note is a free-form text note. The backend offers no update verb, so
// an edit is modelled as delete-then-create and produces a fresh ID.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
