package rest

import (
	"context"

	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/internal/api"
)

// intentSource identifies this client to the backend's intent router.
const intentSource = "web_app"

type intentGateway struct {
	client *api.Client
}

// NewIntentGateway returns a REST-backed implementation of IntentGateway.
func NewIntentGateway(client *api.Client) gateway.IntentGateway {
	return &intentGateway{client: client}
}

func (g *intentGateway) Send(ctx context.Context, intent string, params gateway.Params) (string, error) {
	if params == nil {
		params = gateway.Params{}
	}
	var result messagePayload
	req := intentRequest{Intent: intent, Params: params, Source: intentSource}
	if err := g.client.Post(ctx, "/intent", req, &result); err != nil {
		return "", err
	}
	return result.Message, nil
}
