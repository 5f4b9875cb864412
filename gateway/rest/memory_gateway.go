package rest

import (
	"context"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/internal/api"
)

type memoryGateway struct {
	client *api.Client
}

// NewMemoryGateway returns a REST-backed implementation of MemoryGateway.
func NewMemoryGateway(client *api.Client) gateway.MemoryGateway {
	return &memoryGateway{client: client}
}

func (g *memoryGateway) List(ctx context.Context) ([]domain.Memory, error) {
	var memories []domain.Memory
	if err := g.client.Get(ctx, "/memory", &memories); err != nil {
		return nil, err
	}
	return memories, nil
}

func (g *memoryGateway) Save(ctx context.Context, key, value string) (*domain.Memory, error) {
	var saved domain.Memory
	if err := g.client.Post(ctx, "/memory", memoryRequest{Key: key, Value: value}, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (g *memoryGateway) Get(ctx context.Context, key string) (*domain.Memory, error) {
	var memory domain.Memory
	if err := g.client.Get(ctx, "/memory/"+key, &memory); err != nil {
		return nil, err
	}
	return &memory, nil
}

func (g *memoryGateway) Delete(ctx context.Context, key string) error {
	return g.client.Delete(ctx, "/memory/"+key, nil)
}
