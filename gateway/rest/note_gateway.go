package rest

import (
	"context"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/internal/api"
)

type noteGateway struct {
	client *api.Client
}

// NewNoteGateway returns a REST-backed implementation of NoteGateway.
func NewNoteGateway(client *api.Client) gateway.NoteGateway {
	return &noteGateway{client: client}
}

func (g *noteGateway) List(ctx context.Context) ([]domain.Note, error) {
	var notes []domain.Note
	if err := g.client.Get(ctx, "/notes", &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (g *noteGateway) Create(ctx context.Context, draft gateway.NoteDraft) (*domain.Note, error) {
	var created domain.Note
	if err := g.client.Post(ctx, "/notes", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *noteGateway) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, "/notes/"+id, nil)
}
