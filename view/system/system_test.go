package system

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziggyhome/panel/gateway"
)

type mockSystemGateway struct {
	status, time, date string
	statusErr          error
	timeErr            error
	dateErr            error

	restartCalls  int
	shutdownCalls int
	err           error
}

func (m *mockSystemGateway) Status(ctx context.Context) (string, error) { return m.status, m.statusErr }
func (m *mockSystemGateway) Time(ctx context.Context) (string, error)   { return m.time, m.timeErr }
func (m *mockSystemGateway) Date(ctx context.Context) (string, error)   { return m.date, m.dateErr }

func (m *mockSystemGateway) Restart(ctx context.Context) (string, error) {
	m.restartCalls++
	return "Restarting", m.err
}

func (m *mockSystemGateway) Shutdown(ctx context.Context) (string, error) {
	m.shutdownCalls++
	return "Shutting down", m.err
}

type mockIntentGateway struct {
	result     string
	err        error
	lastIntent string
	lastParams gateway.Params
}

func (m *mockIntentGateway) Send(ctx context.Context, intent string, params gateway.Params) (string, error) {
	m.lastIntent, m.lastParams = intent, params
	return m.result, m.err
}

func TestLoadDegradesPerField(t *testing.T) {
	gw := &mockSystemGateway{
		status:  "Ziggy is online",
		timeErr: errors.New("backend down"),
		date:    "Monday, January 1",
	}
	panel := New(gw, &mockIntentGateway{}, nil, nil)

	panel.Load(context.Background())
	info := panel.Info()
	assert.Equal(t, "Ziggy is online", info.Status)
	assert.Equal(t, timePlaceholder, info.Time, "a failed fetch degrades to its placeholder")
	assert.Equal(t, "Monday, January 1", info.Date)
	assert.Zero(t, panel.Alert().PendingErrors(), "degrades never escalate to page errors")
}

func TestShutdownDeclinedSendsNothing(t *testing.T) {
	gw := &mockSystemGateway{}
	panel := New(gw, &mockIntentGateway{}, func(string) bool { return false }, nil)

	require.NoError(t, panel.Shutdown(context.Background()))
	assert.Zero(t, gw.shutdownCalls)
}

func TestRestartConfirmedSurfacesAck(t *testing.T) {
	gw := &mockSystemGateway{}
	panel := New(gw, &mockIntentGateway{}, nil, nil)

	require.NoError(t, panel.Restart(context.Background()))
	assert.Equal(t, 1, gw.restartCalls)
	msg, ok := panel.Alert().TakeSuccess()
	require.True(t, ok)
	assert.Equal(t, "Restarting", msg)
}

func TestRestartFailureSurfacesErrorOnce(t *testing.T) {
	gw := &mockSystemGateway{err: errors.New("backend down")}
	panel := New(gw, &mockIntentGateway{}, nil, nil)

	require.Error(t, panel.Restart(context.Background()))
	assert.Equal(t, 1, panel.Alert().PendingErrors())
}

func TestPingTestRoutesThroughIntentGateway(t *testing.T) {
	intents := &mockIntentGateway{result: "ping ok, 12ms"}
	panel := New(&mockSystemGateway{}, intents, nil, nil)

	require.NoError(t, panel.PingTest(context.Background(), "example.com"))
	assert.Equal(t, "ping_test", intents.lastIntent)
	assert.Equal(t, "example.com", intents.lastParams["domain"])
	msg, _ := panel.Alert().TakeSuccess()
	assert.Equal(t, "ping ok, 12ms", msg)
}
