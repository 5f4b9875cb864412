package gateway

import (
	"context"

	"github.com/ziggyhome/panel/domain"
)

type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NoteGateway has no update operation; the backend does not expose one.
type NoteGateway interface {
	List(ctx context.Context) ([]domain.Note, error)
	Create(ctx context.Context, draft NoteDraft) (*domain.Note, error)
	Delete(ctx context.Context, id string) error
}
