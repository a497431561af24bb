package command

import (
	"iter"
	"sort"
	"statbot/internal/core/port"
	"strings"

	"github.com/rs/zerolog/log"
)

// Registry maps command names to handlers. Resolution never fails: names
// with no handler resolve to the fallback handler given at construction.
type Registry struct {
	commands map[string]port.Command
	fallback port.Command
}

func NewRegistry(fallback port.Command) *Registry {
	return &Registry{
		commands: make(map[string]port.Command),
		fallback: fallback,
	}
}

// Register adds a command handler to the registry. Registering a name twice
// replaces the earlier handler; the last registration wins.
func (r *Registry) Register(handler port.Command) {
	name := strings.ToLower(handler.GetCommand())

	if _, ok := r.commands[name]; ok {
		log.Warn().Str("handler", name).Msg("replacing existing command handler")
	}

	log.Info().Str("handler", name).Msg("adding command handler to registry")
	r.commands[name] = handler
}

// Resolve fetches the handler for command, falling back to the registry's
// default handler for unknown names.
func (r *Registry) Resolve(command string) port.Command {
	log.Debug().Str("command", command).Msg("fetching command handler from registry")

	handler, ok := r.commands[strings.ToLower(command)]
	if !ok {
		return r.fallback
	}

	return handler
}

// ListHelp yields one entry per command that has help text, ordered by name.
// The sequence is restartable and stops early when the consumer does.
func (r *Registry) ListHelp() iter.Seq[port.HelpEntry] {
	return func(yield func(port.HelpEntry) bool) {
		names := make([]string, 0, len(r.commands))
		for name := range r.commands {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			handler := r.commands[name]
			if handler.GetHelp() == "" {
				continue
			}
			entry := port.HelpEntry{
				Name:  name,
				Usage: handler.GetUsage(),
				Help:  handler.GetHelp(),
			}
			if !yield(entry) {
				return
			}
		}
	}
}
