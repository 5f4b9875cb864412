package rest

import "github.com/ziggyhome/panel/gateway"

// Wire shapes fixed by the backend contract.

type memoryRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatReply struct {
	Response string `json:"response"`
}

type controlRequest struct {
	Room   string         `json:"room,omitempty"`
	Action string         `json:"action"`
	Params gateway.Params `json:"params,omitempty"`
}

type intentRequest struct {
	Intent string         `json:"intent"`
	Params gateway.Params `json:"params"`
	Source string         `json:"source"`
}

// messagePayload is the generic `{message}` envelope used by the system,
// sensor and intent endpoints.
type messagePayload struct {
	Message string `json:"message"`
}
