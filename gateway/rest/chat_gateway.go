package rest

import (
	"context"
	"strconv"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/internal/api"
)

type chatGateway struct {
	client *api.Client
}

// NewChatGateway returns a REST-backed implementation of ChatGateway.
func NewChatGateway(client *api.Client) gateway.ChatGateway {
	return &chatGateway{client: client}
}

func (g *chatGateway) Send(ctx context.Context, message string) (string, error) {
	var reply chatReply
	if err := g.client.Post(ctx, "/chat", chatRequest{Message: message}, &reply); err != nil {
		return "", err
	}
	return reply.Response, nil
}

func (g *chatGateway) History(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	var history []domain.ChatMessage
	path := "/chat/history?limit=" + strconv.Itoa(limit)
	if err := g.client.Get(ctx, path, &history); err != nil {
		return nil, err
	}
	return history, nil
}
