package rest

import (
	"context"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/internal/api"
)

type taskGateway struct {
	client *api.Client
}

// NewTaskGateway returns a REST-backed implementation of TaskGateway.
func NewTaskGateway(client *api.Client) gateway.TaskGateway {
	return &taskGateway{client: client}
}

func (g *taskGateway) List(ctx context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	if err := g.client.Get(ctx, "/tasks", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (g *taskGateway) Create(ctx context.Context, draft gateway.TaskDraft) (*domain.Task, error) {
	var created domain.Task
	if err := g.client.Post(ctx, "/tasks", draft, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (g *taskGateway) Complete(ctx context.Context, id string) (*domain.Task, error) {
	var updated domain.Task
	if err := g.client.Put(ctx, "/tasks/"+id+"/complete", nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (g *taskGateway) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, "/tasks/"+id, nil)
}

func (g *taskGateway) DeleteAll(ctx context.Context) error {
	return g.client.Delete(ctx, "/tasks", nil)
}
