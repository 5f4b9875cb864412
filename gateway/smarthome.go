package gateway

import "context"

// Params carries free-form command parameters (brightness, color,
// temperature, source) exactly as the backend expects them.
type Params map[string]any

// SmartHomeGateway issues device commands and reads sensors. Control
// calls return the backend's human-readable ack message.
type SmartHomeGateway interface {
	ControlLights(ctx context.Context, room, action string, params Params) (string, error)
	ControlAC(ctx context.Context, action string, params Params) (string, error)
	ControlTV(ctx context.Context, action string, params Params) (string, error)
	Sensors(ctx context.Context, room, sensorType string) (string, error)
}
