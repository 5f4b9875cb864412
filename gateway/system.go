package gateway

import "context"

// SystemGateway reads and controls the assistant process itself. Every
// call returns the backend's message line.
type SystemGateway interface {
	Status(ctx context.Context) (string, error)
	Time(ctx context.Context) (string, error)
	Date(ctx context.Context) (string, error)
	Restart(ctx context.Context) (string, error)
	Shutdown(ctx context.Context) (string, error)
}
