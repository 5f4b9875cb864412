package rest

import (
	"context"
	"net/url"

	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/internal/api"
)

type smartHomeGateway struct {
	client *api.Client
}

// NewSmartHomeGateway returns a REST-backed implementation of SmartHomeGateway.
func NewSmartHomeGateway(client *api.Client) gateway.SmartHomeGateway {
	return &smartHomeGateway{client: client}
}

func (g *smartHomeGateway) ControlLights(ctx context.Context, room, action string, params gateway.Params) (string, error) {
	return g.control(ctx, "/smarthome/lights", controlRequest{Room: room, Action: action, Params: params})
}

func (g *smartHomeGateway) ControlAC(ctx context.Context, action string, params gateway.Params) (string, error) {
	return g.control(ctx, "/smarthome/ac", controlRequest{Action: action, Params: params})
}

func (g *smartHomeGateway) ControlTV(ctx context.Context, action string, params gateway.Params) (string, error) {
	return g.control(ctx, "/smarthome/tv", controlRequest{Action: action, Params: params})
}

func (g *smartHomeGateway) control(ctx context.Context, path string, req controlRequest) (string, error) {
	var ack messagePayload
	if err := g.client.Post(ctx, path, req, &ack); err != nil {
		return "", err
	}
	return ack.Message, nil
}

func (g *smartHomeGateway) Sensors(ctx context.Context, room, sensorType string) (string, error) {
	var reading messagePayload
	path := "/smarthome/sensors/" + url.PathEscape(room) + "?sensor_type=" + url.QueryEscape(sensorType)
	if err := g.client.Get(ctx, path, &reading); err != nil {
		return "", err
	}
	return reading.Message, nil
}
