package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
)

type stubTasks struct {
	tasks []domain.Task
	err   error
}

func (s *stubTasks) List(ctx context.Context) ([]domain.Task, error) { return s.tasks, s.err }
func (s *stubTasks) Create(ctx context.Context, draft gateway.TaskDraft) (*domain.Task, error) {
	return nil, nil
}
func (s *stubTasks) Complete(ctx context.Context, id string) (*domain.Task, error) { return nil, nil }
func (s *stubTasks) Delete(ctx context.Context, id string) error                   { return nil }
func (s *stubTasks) DeleteAll(ctx context.Context) error                           { return nil }

type stubMemories struct {
	memories []domain.Memory
	err      error
}

func (s *stubMemories) List(ctx context.Context) ([]domain.Memory, error) { return s.memories, s.err }
func (s *stubMemories) Save(ctx context.Context, key, value string) (*domain.Memory, error) {
	return nil, nil
}
func (s *stubMemories) Get(ctx context.Context, key string) (*domain.Memory, error) {
	return nil, nil
}
func (s *stubMemories) Delete(ctx context.Context, key string) error { return nil }

type stubSystem struct {
	status string
	err    error
}

func (s *stubSystem) Status(ctx context.Context) (string, error)   { return s.status, s.err }
func (s *stubSystem) Time(ctx context.Context) (string, error)     { return "", nil }
func (s *stubSystem) Date(ctx context.Context) (string, error)     { return "", nil }
func (s *stubSystem) Restart(ctx context.Context) (string, error)  { return "", nil }
func (s *stubSystem) Shutdown(ctx context.Context) (string, error) { return "", nil }

func TestLoadComputesAggregates(t *testing.T) {
	o := New(
		&stubTasks{tasks: []domain.Task{{ID: "1", Completed: true}, {ID: "2"}, {ID: "3"}}},
		&stubMemories{memories: []domain.Memory{{Key: "a"}, {Key: "b"}}},
		&stubSystem{status: "Ziggy is online"},
		nil,
	)

	o.Load(context.Background())
	stats := o.Stats()
	assert.Equal(t, 3, stats.TotalTasks)
	assert.Equal(t, 1, stats.CompletedTasks)
	assert.Equal(t, 2, stats.PendingTasks)
	assert.Equal(t, 2, stats.Memories)
	assert.Equal(t, "Ziggy is online", stats.SystemStatus)
	assert.InDelta(t, 1.0/3.0, o.CompletionRatio(), 1e-9)
}

func TestLoadDegradesEachSourceIndependently(t *testing.T) {
	o := New(
		&stubTasks{err: errors.New("backend down")},
		&stubMemories{memories: []domain.Memory{{Key: "a"}}},
		&stubSystem{err: errors.New("backend down")},
		nil,
	)

	o.Load(context.Background())
	stats := o.Stats()
	assert.Zero(t, stats.TotalTasks)
	assert.Equal(t, 1, stats.Memories, "one failing source does not drag down the others")
	assert.Equal(t, statusPlaceholder, stats.SystemStatus)
	assert.True(t, o.Loaded(), "the page renders regardless of partial outages")
	assert.Zero(t, o.CompletionRatio())
}
