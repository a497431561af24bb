package commands

import (
	"context"
	"fmt"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"strings"
	"time"
)

type HelpHandler struct {
	meta
	registry port.CommandRegistry
	sender   port.Transport
}

func NewHelpHandler(registry port.CommandRegistry, sender port.Transport, command string) *HelpHandler {
	return &HelpHandler{
		meta:     meta{command: command, usage: "!help", help: "list available commands"},
		registry: registry,
		sender:   sender,
	}
}

func (h *HelpHandler) Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var lines []string
	for entry := range h.registry.ListHelp() {
		lines = append(lines, fmt.Sprintf("%s: %s (usage: %s)", entry.Name, entry.Help, entry.Usage))
	}

	return h.sender.Send(ctx, message.Channel, strings.Join(lines, "\n"))
}
