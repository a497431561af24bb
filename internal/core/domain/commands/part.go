package commands

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type PartHandler struct {
	meta
	sender port.Transport
}

func NewPartHandler(sender port.Transport, command string) *PartHandler {
	return &PartHandler{
		meta:   meta{command: command, usage: "!part [channel]", help: "ask me to leave a channel, the current one by default"},
		sender: sender,
	}
}

func (h *PartHandler) Respond(_ context.Context, _ time.Duration, message *domain.Message) error {
	channel := message.Channel
	if len(message.Args) > 0 {
		channel = message.Args[0]
	}

	log.Info().Str("nick", message.Nick).Str("channel", channel).Msg("part requested")
	h.sender.Part(channel)

	return nil
}
