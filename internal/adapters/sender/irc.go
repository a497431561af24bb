// Package sender adapts the IRC client library to the transport port.
package sender

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	irc "github.com/thoj/go-ircevent"
)

type IRCSender struct {
	conn *irc.Connection

	mu       sync.RWMutex
	channels map[string]struct{}
}

func NewIRCSender(conn *irc.Connection) *IRCSender {
	return &IRCSender{
		conn:     conn,
		channels: make(map[string]struct{}),
	}
}

// Send delivers text to a channel or nickname, one PRIVMSG per line.
func (s *IRCSender) Send(_ context.Context, target, text string) error {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		s.conn.Privmsg(target, line)
	}

	return nil
}

func (s *IRCSender) Join(channel string) {
	log.Info().Str("channel", channel).Msg("joining channel")
	s.conn.Join(channel)

	s.mu.Lock()
	s.channels[channel] = struct{}{}
	s.mu.Unlock()
}

func (s *IRCSender) Part(channel string) {
	log.Info().Str("channel", channel).Msg("leaving channel")
	s.conn.Part(channel)
	s.Forget(channel)
}

// Forget drops a channel from the membership set without sending a PART, for
// when the server removes the bot (kick).
func (s *IRCSender) Forget(channel string) {
	s.mu.Lock()
	delete(s.channels, channel)
	s.mu.Unlock()
}

func (s *IRCSender) CurrentChannels() []string {
	s.mu.RLock()
	channels := make([]string, 0, len(s.channels))
	for channel := range s.channels {
		channels = append(channels, channel)
	}
	s.mu.RUnlock()

	sort.Strings(channels)
	return channels
}

func (s *IRCSender) Nick() string {
	return s.conn.GetNick()
}
