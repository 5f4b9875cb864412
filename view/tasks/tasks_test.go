package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/view"
)

type mockTaskGateway struct {
	tasks     []domain.Task
	created   *domain.Task
	completed *domain.Task
	err       error

	createCalls   int
	completeCalls int
	deleteCalls   int
	deleteAllCall int
}

func (m *mockTaskGateway) List(ctx context.Context) ([]domain.Task, error) {
	return m.tasks, m.err
}

func (m *mockTaskGateway) Create(ctx context.Context, draft gateway.TaskDraft) (*domain.Task, error) {
	m.createCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.created, nil
}

func (m *mockTaskGateway) Complete(ctx context.Context, id string) (*domain.Task, error) {
	m.completeCalls++
	if m.err != nil {
		return nil, m.err
	}
	return m.completed, nil
}

func (m *mockTaskGateway) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	return m.err
}

func (m *mockTaskGateway) DeleteAll(ctx context.Context) error {
	m.deleteAllCall++
	return m.err
}

func deny(string) bool    { return false }
func approve(string) bool { return true }

func TestAddInsertsServerReturnedEntity(t *testing.T) {
	created := &domain.Task{
		ID:        "1",
		Task:      "buy milk",
		Priority:  domain.PriorityHigh,
		Completed: false,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	gw := &mockTaskGateway{created: created}
	board := New(gw, approve, nil)

	err := board.Add(context.Background(), gateway.TaskDraft{Task: "buy milk", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	require.Equal(t, []domain.Task{*created}, board.Tasks())
	_, surfaced := board.Alert().TakeError()
	assert.False(t, surfaced)
}

func TestAddFailureLeavesCollectionUnchanged(t *testing.T) {
	gw := &mockTaskGateway{err: errors.New("backend down")}
	board := New(gw, approve, nil)

	err := board.Add(context.Background(), gateway.TaskDraft{Task: "buy milk"})
	require.Error(t, err)
	assert.Zero(t, len(board.Tasks()))
	assert.Equal(t, 1, board.Alert().PendingErrors(), "error surfaces exactly once")
}

func TestAddBlankTextIsSilentNoop(t *testing.T) {
	gw := &mockTaskGateway{}
	board := New(gw, approve, nil)

	require.NoError(t, board.Add(context.Background(), gateway.TaskDraft{Task: "   "}))
	assert.Zero(t, gw.createCalls, "validation failure must not hit the network")
	assert.Zero(t, board.Alert().PendingErrors())
}

func TestAddDefaultsPriorityToMedium(t *testing.T) {
	gw := &mockTaskGateway{created: &domain.Task{ID: "1", Task: "x", Priority: domain.PriorityMedium}}
	board := New(gw, approve, nil)
	require.NoError(t, board.Add(context.Background(), gateway.TaskDraft{Task: "x"}))
	assert.Equal(t, domain.PriorityMedium, board.Tasks()[0].Priority)
}

func TestCompleteIsMonotonic(t *testing.T) {
	gw := &mockTaskGateway{
		tasks:     []domain.Task{{ID: "1", Task: "water plants"}},
		completed: &domain.Task{ID: "1", Task: "water plants", Completed: true},
	}
	board := New(gw, approve, nil)
	require.NoError(t, board.Load(context.Background()))

	require.NoError(t, board.Complete(context.Background(), "1"))
	assert.True(t, board.Tasks()[0].Completed)

	// completing again must not hit the network or flip anything back
	require.NoError(t, board.Complete(context.Background(), "1"))
	assert.True(t, board.Tasks()[0].Completed)
	assert.Equal(t, 1, gw.completeCalls)
}

func TestCompleteFlipsOnlyAfterServerConfirms(t *testing.T) {
	gw := &mockTaskGateway{tasks: []domain.Task{{ID: "1", Task: "water plants"}}}
	board := New(gw, approve, nil)
	require.NoError(t, board.Load(context.Background()))

	// Pages add no deadline of their own; the api client owns the only
	// request timeout, so a slow call here simply blocks the page.
	gw.err = errors.New("timeout")
	require.Error(t, board.Complete(context.Background(), "1"))
	assert.False(t, board.Tasks()[0].Completed, "no local flip without server confirmation")
}

func TestDeleteDeclinedByUserSendsNothing(t *testing.T) {
	gw := &mockTaskGateway{tasks: []domain.Task{{ID: "1"}}}
	board := New(gw, deny, nil)
	require.NoError(t, board.Load(context.Background()))

	require.NoError(t, board.Delete(context.Background(), "1"))
	assert.Zero(t, gw.deleteCalls)
	assert.Equal(t, 1, len(board.Tasks()))
}

func TestDeleteAllEmptiesOnlyOnSuccess(t *testing.T) {
	gw := &mockTaskGateway{tasks: []domain.Task{{ID: "1"}, {ID: "2"}}}
	board := New(gw, approve, nil)
	require.NoError(t, board.Load(context.Background()))

	gw.err = errors.New("backend down")
	require.Error(t, board.DeleteAll(context.Background()))
	assert.Equal(t, 2, len(board.Tasks()), "failure leaves the collection untouched")

	gw.err = nil
	require.NoError(t, board.DeleteAll(context.Background()))
	assert.Zero(t, len(board.Tasks()))
}

func TestLoadFailureSetsFailedPhase(t *testing.T) {
	gw := &mockTaskGateway{err: errors.New("backend down")}
	board := New(gw, approve, nil)

	require.Error(t, board.Load(context.Background()))
	assert.Equal(t, view.PhaseFailed, board.Phase())
	assert.Zero(t, len(board.Tasks()))
	assert.Equal(t, 1, board.Alert().PendingErrors())
}

func TestDerivedCounts(t *testing.T) {
	gw := &mockTaskGateway{tasks: []domain.Task{
		{ID: "1", Completed: true},
		{ID: "2"},
		{ID: "3"},
	}}
	board := New(gw, approve, nil)
	require.NoError(t, board.Load(context.Background()))

	assert.Equal(t, 1, board.Completed())
	assert.Equal(t, 2, board.Pending())
	assert.InDelta(t, 1.0/3.0, board.CompletionRatio(), 1e-9)
}

func TestSearchFiltersTextAndNotes(t *testing.T) {
	gw := &mockTaskGateway{tasks: []domain.Task{
		{ID: "1", Task: "Buy milk"},
		{ID: "2", Task: "call mom", Notes: "about milk delivery"},
		{ID: "3", Task: "gym"},
	}}
	board := New(gw, approve, nil)
	require.NoError(t, board.Load(context.Background()))

	assert.Len(t, board.Search("MILK"), 2)
	assert.Len(t, board.Search(""), 3)
}
