package gateway

import (
	"context"

	"github.com/ziggyhome/panel/domain"
)

// TaskDraft carries the fields a user fills in before the server has
// assigned the task an identity.
type TaskDraft struct {
	Task     string `json:"task"`
	Priority string `json:"priority"`
	Due      string `json:"due,omitempty"`
	Reminder string `json:"reminder,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Repeat   string `json:"repeat,omitempty"`
}

type TaskGateway interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, draft TaskDraft) (*domain.Task, error)
	Complete(ctx context.Context, id string) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
