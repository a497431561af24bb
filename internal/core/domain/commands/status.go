package commands

import (
	"context"
	"fmt"
	"net/http"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// StatusHandler posts a status update to the remote tracking service. It
// also backs implicit posts, where the dispatcher passes the channel name as
// the first argument and the whole message as the second.
type StatusHandler struct {
	meta
	service port.StatusService
	sender  port.Transport
}

func NewStatusHandler(service port.StatusService, sender port.Transport, command string) *StatusHandler {
	return &StatusHandler{
		meta: meta{
			command:    command,
			usage:      "!status <project> <text>",
			help:       "post a status update for a project",
			privileged: true,
		},
		service: service,
		sender:  sender,
	}
}

func (h *StatusHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	l := log.With().
		Str("nick", message.Nick).
		Str("command", h.GetCommand()).
		Logger()

	l.Info().Msg("handling request")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	project, text := splitStatusArgs(message.Args)
	if project == "" || text == "" {
		return h.sender.Send(ctx, message.Channel, "usage: "+h.GetUsage())
	}

	res := <-h.service.CreateStatus(ctx, message.Nick, project, text).Done()
	if !res.OK {
		if res.Code == http.StatusForbidden {
			return h.sender.Send(ctx, message.Channel, "You are not allowed to post statuses.")
		}

		l.Error().Int("code", res.Code).Str("detail", res.Detail).Msg("failed to create status")
		return h.sender.Send(ctx, message.Channel, fmt.Sprintf("failed to post status: %s", res.Detail))
	}

	return h.sender.Send(ctx, message.Channel, fmt.Sprintf("Status #%d posted.", res.Value))
}

func splitStatusArgs(args []string) (string, string) {
	if len(args) < 2 {
		return "", ""
	}

	project := strings.TrimPrefix(args[0], "#")
	text := strings.TrimSpace(strings.Join(args[1:], " "))
	return project, text
}
