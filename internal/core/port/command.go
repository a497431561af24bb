package port

import (
	"context"
	"iter"
	"statbot/internal/core/domain"
	"time"
)

type Command interface {
	// Respond processes a given message within a specified timeout and responds to the originating channel.
	Respond(ctx context.Context, timeout time.Duration, message *domain.Message) error
	// GetCommand retrieves the command identifier associated with a specific command handler.
	GetCommand() string
	// GetUsage returns the invocation syntax shown in help listings.
	GetUsage() string
	// GetHelp returns the one-line description shown in help listings. Commands
	// returning an empty string are omitted from listings but remain invocable.
	GetHelp() string
	// Privileged reports whether the handler mutates remote state on behalf of a
	// user and therefore requires a positive identity check before it runs.
	Privileged() bool
}

// HelpEntry is one row of a registry help listing.
type HelpEntry struct {
	Name  string
	Usage string
	Help  string
}

type CommandRegistry interface {
	// Register adds a new command handler to the command registry. The last
	// registration for a given name wins.
	Register(handler Command)
	// Resolve retrieves a registered Command based on its string identifier, or
	// the registry's fallback handler when no match exists. It never returns nil.
	Resolve(command string) Command
	// ListHelp returns a restartable sequence of help entries for every command
	// with help text, ordered by name.
	ListHelp() iter.Seq[HelpEntry]
}
