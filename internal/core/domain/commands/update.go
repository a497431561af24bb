package commands

import (
	"context"
	"fmt"
	"net/http"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

type UpdateHandler struct {
	meta
	service port.StatusService
	sender  port.Transport
}

func NewUpdateHandler(service port.StatusService, sender port.Transport, command string) *UpdateHandler {
	return &UpdateHandler{
		meta: meta{
			command:    command,
			usage:      "!update <field> <value> [nick]",
			help:       "update a user profile field, your own by default",
			privileged: true,
		},
		service: service,
		sender:  sender,
	}
}

func (h *UpdateHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Str("nick", message.Nick).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if len(message.Args) < 2 {
		return h.sender.Send(ctx, message.Channel, "usage: "+h.GetUsage())
	}

	field, value := message.Args[0], message.Args[1]
	target := message.Nick
	if len(message.Args) > 2 {
		target = message.Args[2]
	}

	res := <-h.service.UpdateUser(ctx, message.Nick, field, value, target).Done()
	if !res.OK {
		if res.Code == http.StatusForbidden {
			return h.sender.Send(ctx, message.Channel, "You are not allowed to update that user.")
		}

		l.Error().Int("code", res.Code).Str("detail", res.Detail).Msg("failed to update user")
		return h.sender.Send(ctx, message.Channel, fmt.Sprintf("failed to update user: %s", res.Detail))
	}

	return h.sender.Send(ctx, message.Channel, fmt.Sprintf("Updated %s for %s.", field, target))
}
