package commands

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"strings"
	"time"
)

type ChannelsHandler struct {
	meta
	sender port.Transport
}

func NewChannelsHandler(sender port.Transport, command string) *ChannelsHandler {
	return &ChannelsHandler{
		meta:   meta{command: command, usage: "!channels", help: "list the channels I am in"},
		sender: sender,
	}
}

func (h *ChannelsHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	channels := h.sender.CurrentChannels()
	if len(channels) == 0 {
		return h.sender.Send(ctx, message.Channel, "I am not in any channels.")
	}

	return h.sender.Send(ctx, message.Channel, "I am currently in: "+strings.Join(channels, ", "))
}
