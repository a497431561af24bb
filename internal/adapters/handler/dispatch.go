package handler

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Dispatch is the single entry point for inbound chat messages. It recognizes
// messages addressed to the bot, classifies them, resolves the command in the
// registry and invokes it, gating privileged commands behind an identity
// check.
type Dispatch struct {
	registry  port.CommandRegistry
	auth      port.Authorizer
	transport port.Transport
	timeout   time.Duration
}

func NewDispatch(registry port.CommandRegistry, auth port.Authorizer, transport port.Transport,
	timeout time.Duration) *Dispatch {
	return &Dispatch{registry: registry, auth: auth, transport: transport, timeout: timeout}
}

// messageKind is the closed classification of an addressed message.
type messageKind int

const (
	explicitCommand messageKind = iota
	reservedPhrase
	implicitStatusPost
)

func (k messageKind) String() string {
	switch k {
	case explicitCommand:
		return "command"
	case reservedPhrase:
		return "phrase"
	default:
		return "post"
	}
}

const affectionPhrase = "i love you"

// Handle routes one inbound message. Messages not addressed to the bot are
// ignored entirely. A panicking handler is contained here so one failing
// command never takes down message processing.
func (d *Dispatch) Handle(ctx context.Context, nick, channel, text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("nick", nick).Str("channel", channel).
				Msg("command handler panicked")
		}
	}()

	rest, ok := d.addressed(text)
	if !ok {
		return
	}

	kind, name, args := classify(channel, rest)

	l := log.With().
		Str("nick", nick).
		Str("channel", channel).
		Str("command", name).
		Logger()

	l.Debug().Stringer("kind", kind).Str("text", rest).Msg("received addressed message")

	cmd := d.registry.Resolve(name)

	if cmd.Privileged() {
		res := <-d.auth.CheckIdentity(ctx, nick).Done()
		if !res.OK || !res.Value {
			// silent toward the channel by policy
			l.Info().Msg("identity not verified, dropping privileged command")
			return
		}
	}

	message := &domain.Message{
		Nick:    nick,
		Channel: d.replyTarget(nick, channel),
		Text:    rest,
		Args:    args,
	}

	if err := cmd.Respond(ctx, d.timeout, message); err != nil {
		l.Error().Err(err).Msg("failed to respond to command")
	}
}

// addressed strips the "<nick>: " or "<nick>, " prefix, reporting whether the
// message was directed at the bot at all.
func (d *Dispatch) addressed(text string) (string, bool) {
	name := d.transport.Nick()
	if name == "" || !strings.HasPrefix(text, name) {
		return "", false
	}

	rest := text[len(name):]
	if rest == "" || (rest[0] != ':' && rest[0] != ',') {
		return "", false
	}

	return strings.TrimSpace(rest[1:]), true
}

// classify sorts an addressed message into the closed variant set: an
// explicit !command, the reserved affection phrase, or an implicit status
// post carrying the channel and the whole message as arguments.
func classify(channel, text string) (messageKind, string, []string) {
	if strings.HasPrefix(text, "!") {
		name, rawArgs, _ := strings.Cut(text[1:], " ")
		return explicitCommand, strings.ToLower(name), domain.ParseArgs(rawArgs)
	}

	if strings.EqualFold(text, affectionPhrase) {
		return reservedPhrase, "love", nil
	}

	return implicitStatusPost, "status", []string{channel, text}
}

// replyTarget keeps replies in the originating channel, except for private
// messages, which go back to the sender's nick.
func (d *Dispatch) replyTarget(nick, channel string) string {
	if strings.EqualFold(channel, d.transport.Nick()) {
		return nick
	}
	return channel
}
