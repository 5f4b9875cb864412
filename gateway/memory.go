package gateway

import (
	"context"

	"github.com/ziggyhome/panel/domain"
)

// MemoryGateway addresses memories by key, never by surrogate id.
// Save is an upsert: posting an existing key replaces its value.
type MemoryGateway interface {
	List(ctx context.Context) ([]domain.Memory, error)
	Save(ctx context.Context, key, value string) (*domain.Memory, error)
	Get(ctx context.Context, key string) (*domain.Memory, error)
	Delete(ctx context.Context, key string) error
}
