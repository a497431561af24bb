package commands

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"time"
)

// UnknownHandler is the registry fallback: any command name that resolves to
// nothing else lands here.
type UnknownHandler struct {
	meta
	sender port.Transport
}

func NewUnknownHandler(sender port.Transport) *UnknownHandler {
	return &UnknownHandler{
		meta:   meta{command: "unknown"},
		sender: sender,
	}
}

func (h *UnknownHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return h.sender.Send(ctx, message.Channel, `I don't know that command. Try "!help".`)
}
