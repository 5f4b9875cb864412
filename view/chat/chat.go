// Package chat implements the conversation page: strict request/response
// turn-taking with a fixed fallback line when the assistant cannot be
// reached.
package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ziggyhome/panel/domain"
	"github.com/ziggyhome/panel/gateway"
	"github.com/ziggyhome/panel/view"
)

// IntentPrefix forces the backend to treat a message as a command.
const IntentPrefix = "ziggy do "

const (
	fallbackError = "Sorry, I encountered an error. Please try again."
	fallbackEmpty = "Sorry, I didn't understand that."
)

type Conversation struct {
	gw      gateway.ChatGateway
	confirm view.Confirmer
	logger  *zap.Logger

	messages []domain.ChatMessage
	sending  bool
	input    string
	alert    view.Alert
	now      func() time.Time
}

func New(gw gateway.ChatGateway, confirm view.Confirmer, logger *zap.Logger) *Conversation {
	if confirm == nil {
		confirm = view.ApproveAll
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Conversation{gw: gw, confirm: confirm, logger: logger, now: time.Now}
}

// LoadHistory replaces the transcript with the backend's records,
// oldest first.
func (c *Conversation) LoadHistory(ctx context.Context, limit int) error {
	history, err := c.gw.History(ctx, limit)
	if err != nil {
		c.alert.Fail("Failed to load chat history")
		return err
	}
	c.messages = history
	return nil
}

// Send appends the user's turn immediately, then the assistant's reply
// once it arrives. On failure the transcript still gets an assistant
// turn, but with a fixed fallback line; the raw error goes to the alert
// queue instead of the transcript.
func (c *Conversation) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" || c.sending {
		return nil
	}
	c.sending = true
	defer func() { c.sending = false }()
	c.input = ""

	c.appendTurn(domain.RoleUser, text)

	reply, err := c.gw.Send(ctx, text)
	if err != nil {
		c.appendTurn(domain.RoleAssistant, fallbackError)
		c.alert.Fail(err.Error())
		return err
	}
	if reply == "" {
		reply = fallbackEmpty
	}
	c.appendTurn(domain.RoleAssistant, reply)
	return nil
}

func (c *Conversation) appendTurn(role, content string) {
	c.messages = append(c.messages, domain.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Content:   content,
		Timestamp: c.now(),
	})
}

// RecheckIntent repopulates the input field with the last user turn
// behind the forced-intent prefix. It never calls the network; the
// user resubmits manually.
func (c *Conversation) RecheckIntent() string {
	for i := len(c.messages) - 1; i >= 0; i-- {
		if c.messages[i].Role == domain.RoleUser {
			c.input = IntentPrefix + c.messages[i].Content
			return c.input
		}
	}
	return ""
}

// Clear wipes the local transcript after user confirmation. The
// backend's history is untouched.
func (c *Conversation) Clear() {
	if !c.confirm("Clear the chat history?") {
		return
	}
	c.messages = nil
}

func (c *Conversation) Messages() []domain.ChatMessage { return c.messages }
func (c *Conversation) Input() string                  { return c.input }
func (c *Conversation) Sending() bool                  { return c.sending }
func (c *Conversation) Alert() *view.Alert             { return &c.alert }
