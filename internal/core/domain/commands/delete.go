package commands

import (
	"context"
	"fmt"
	"net/http"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type DeleteHandler struct {
	meta
	service port.StatusService
	sender  port.Transport
}

func NewDeleteHandler(service port.StatusService, sender port.Transport, command string) *DeleteHandler {
	return &DeleteHandler{
		meta: meta{
			command:    command,
			usage:      "!delete <id>",
			help:       "delete one of your status updates",
			privileged: true,
		},
		service: service,
		sender:  sender,
	}
}

func (h *DeleteHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Str("nick", message.Nick).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if len(message.Args) < 1 {
		return h.sender.Send(ctx, message.Channel, "usage: "+h.GetUsage())
	}

	raw := strings.TrimPrefix(message.Args[0], "#")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return h.sender.Send(ctx, message.Channel, fmt.Sprintf("%q is not a valid status ID.", raw))
	}

	res := <-h.service.DeleteStatus(ctx, id, message.Nick).Done()
	if !res.OK {
		if res.Code == http.StatusForbidden {
			return h.sender.Send(ctx, message.Channel,
				fmt.Sprintf("You can't delete status #%d: you are not its author.", id))
		}

		l.Error().Int("code", res.Code).Str("detail", res.Detail).Msg("failed to delete status")
		return h.sender.Send(ctx, message.Channel, fmt.Sprintf("failed to delete status: %s", res.Detail))
	}

	return h.sender.Send(ctx, message.Channel, fmt.Sprintf("Status #%d deleted.", id))
}
