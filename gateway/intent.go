package gateway

import "context"

// IntentGateway routes a named intent (ping_test, get_wifi_status, ...)
// through the assistant's generic intent endpoint.
type IntentGateway interface {
	Send(ctx context.Context, intent string, params Params) (string, error)
}
