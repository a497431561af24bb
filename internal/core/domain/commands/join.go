package commands

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type JoinHandler struct {
	meta
	sender port.Transport
}

func NewJoinHandler(sender port.Transport, command string) *JoinHandler {
	return &JoinHandler{
		meta:   meta{command: command, usage: "!join <channel>", help: "ask me to join a channel"},
		sender: sender,
	}
}

func (h *JoinHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if len(message.Args) < 1 {
		return h.sender.Send(ctx, message.Channel, "usage: "+h.GetUsage())
	}

	channel := message.Args[0]
	log.Info().Str("nick", message.Nick).Str("channel", channel).Msg("join requested")
	h.sender.Join(channel)

	return nil
}
