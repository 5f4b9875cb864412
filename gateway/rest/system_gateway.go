package rest

import (
	"context"

	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/internal/api"
)

type systemGateway struct {
	client *api.Client
}

// NewSystemGateway returns a REST-backed implementation of SystemGateway.
func NewSystemGateway(client *api.Client) gateway.SystemGateway {
	return &systemGateway{client: client}
}

func (g *systemGateway) Status(ctx context.Context) (string, error) {
	return g.message(ctx, "/system/status")
}

func (g *systemGateway) Time(ctx context.Context) (string, error) {
	return g.message(ctx, "/system/time")
}

func (g *systemGateway) Date(ctx context.Context) (string, error) {
	return g.message(ctx, "/system/date")
}

func (g *systemGateway) Restart(ctx context.Context) (string, error) {
	var ack messagePayload
	if err := g.client.Post(ctx, "/system/restart", nil, &ack); err != nil {
		return "", err
	}
	return ack.Message, nil
}

func (g *systemGateway) Shutdown(ctx context.Context) (string, error) {
	var ack messagePayload
	if err := g.client.Post(ctx, "/system/shutdown", nil, &ack); err != nil {
		return "", err
	}
	return ack.Message, nil
}

func (g *systemGateway) message(ctx context.Context, path string) (string, error) {
	var payload messagePayload
	if err := g.client.Get(ctx, path, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}
