package commands

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"time"
)

// LoveHandler answers the reserved affection phrase. No help text: it is
// reached by phrase, not by "!love", and stays out of listings.
type LoveHandler struct {
	meta
	sender port.Transport
}

func NewLoveHandler(sender port.Transport, command string) *LoveHandler {
	return &LoveHandler{
		meta:   meta{command: command},
		sender: sender,
	}
}

func (h *LoveHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return h.sender.Send(ctx, message.Channel, "<3")
}
