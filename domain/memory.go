package domain

import "time"

// Memory is a key/value fact the assistant remembers. Keys are
// client-supplied and unique; saving an existing key replaces the value.
type Memory struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
