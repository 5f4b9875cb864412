package memorybank

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziggyhome/panel/domain"
)

type mockMemoryGateway struct {
	memories []domain.Memory
	err      error

	saveCalls   int
	deleteCalls int
}

func (m *mockMemoryGateway) List(ctx context.Context) ([]domain.Memory, error) {
	return m.memories, m.err
}

func (m *mockMemoryGateway) Save(ctx context.Context, key, value string) (*domain.Memory, error) {
	m.saveCalls++
	if m.err != nil {
		return nil, m.err
	}
	return &domain.Memory{Key: key, Value: value}, nil
}

func (m *mockMemoryGateway) Get(ctx context.Context, key string) (*domain.Memory, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, mem := range m.memories {
		if mem.Key == key {
			return &mem, nil
		}
	}
	return nil, domain.ErrMemoryNotFound
}

func (m *mockMemoryGateway) Delete(ctx context.Context, key string) error {
	m.deleteCalls++
	return m.err
}

func TestSaveUpsertsByKey(t *testing.T) {
	gw := &mockMemoryGateway{}
	bank := New(gw, nil, nil)

	require.NoError(t, bank.Save(context.Background(), "fav_color", "blue"))
	require.NoError(t, bank.Save(context.Background(), "fav_color", "green"))

	require.Equal(t, 1, len(bank.Memories()), "existing key never grows the collection")
	assert.Equal(t, "fav_color", bank.Memories()[0].Key)
	assert.Equal(t, "green", bank.Memories()[0].Value)
}

func TestSaveNewKeyAppends(t *testing.T) {
	gw := &mockMemoryGateway{memories: []domain.Memory{{Key: "home_city", Value: "Lisbon"}}}
	bank := New(gw, nil, nil)
	require.NoError(t, bank.Load(context.Background()))

	require.NoError(t, bank.Save(context.Background(), "fav_color", "blue"))
	assert.Equal(t, 2, len(bank.Memories()))
}

func TestSaveFailureLeavesBankUnchanged(t *testing.T) {
	gw := &mockMemoryGateway{err: errors.New("backend down")}
	bank := New(gw, nil, nil)

	require.Error(t, bank.Save(context.Background(), "fav_color", "blue"))
	assert.Zero(t, len(bank.Memories()))
	assert.Equal(t, 1, bank.Alert().PendingErrors())
}

func TestSaveBlankKeyOrValueIsSilentNoop(t *testing.T) {
	gw := &mockMemoryGateway{}
	bank := New(gw, nil, nil)

	require.NoError(t, bank.Save(context.Background(), " ", "blue"))
	require.NoError(t, bank.Save(context.Background(), "fav_color", ""))
	assert.Zero(t, gw.saveCalls)
	assert.Zero(t, bank.Alert().PendingErrors())
}

func TestDeleteRemovesByKey(t *testing.T) {
	gw := &mockMemoryGateway{memories: []domain.Memory{
		{Key: "fav_color", Value: "blue"},
		{Key: "home_city", Value: "Lisbon"},
	}}
	bank := New(gw, nil, nil)
	require.NoError(t, bank.Load(context.Background()))

	require.NoError(t, bank.Delete(context.Background(), "fav_color"))
	require.Equal(t, 1, len(bank.Memories()))
	assert.Equal(t, "home_city", bank.Memories()[0].Key)
}

func TestDeleteDeclinedSendsNothing(t *testing.T) {
	gw := &mockMemoryGateway{memories: []domain.Memory{{Key: "fav_color"}}}
	bank := New(gw, func(string) bool { return false }, nil)
	require.NoError(t, bank.Load(context.Background()))

	require.NoError(t, bank.Delete(context.Background(), "fav_color"))
	assert.Zero(t, gw.deleteCalls)
	assert.Equal(t, 1, len(bank.Memories()))
}

func TestSearchMatchesKeyAndValue(t *testing.T) {
	gw := &mockMemoryGateway{memories: []domain.Memory{
		{Key: "fav_color", Value: "blue"},
		{Key: "car", Value: "blue hatchback"},
		{Key: "home_city", Value: "Lisbon"},
	}}
	bank := New(gw, nil, nil)
	require.NoError(t, bank.Load(context.Background()))

	assert.Len(t, bank.Search("blue"), 2)
	assert.Len(t, bank.Search("CITY"), 1)
	assert.Len(t, bank.Search(""), 3)
}
