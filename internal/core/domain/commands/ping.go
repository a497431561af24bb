package commands

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"time"
)

type PingHandler struct {
	meta
	sender port.Transport
}

func NewPingHandler(sender port.Transport, command string) *PingHandler {
	return &PingHandler{
		meta:   meta{command: command, usage: "!ping", help: "check whether I am alive"},
		sender: sender,
	}
}

func (h *PingHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return h.sender.Send(ctx, message.Channel, "Pong!")
}
