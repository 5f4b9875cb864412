package gateway

import (
	"context"

	"github.com/ziggyhome/panel/domain"
)

type ChatGateway interface {
	// Send submits one user message and returns the assistant's reply text.
	Send(ctx context.Context, message string) (string, error)
	History(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}
