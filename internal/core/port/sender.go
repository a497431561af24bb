package port

import "context"

type Transport interface {
	// Send delivers text to a channel or nickname.
	Send(ctx context.Context, target, text string) error
	// Join enters a channel.
	Join(channel string)
	// Part leaves a channel.
	Part(channel string)
	// CurrentChannels returns the channels the bot currently occupies.
	CurrentChannels() []string
	// Nick returns the bot's current network-assigned nickname.
	Nick() string
}

// Notifier is the slice of the transport the authorization manager needs to
// send identity probes.
type Notifier interface {
	Send(ctx context.Context, target, text string) error
}
