package commands

import (
	"context"
	"statbot/internal/core/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelsRespond(t *testing.T) {
	ts := &MockTransport{chans: []string{"#dev", "#infra"}}
	channelsHandler := NewChannelsHandler(ts, "channels")

	err := channelsHandler.Respond(context.Background(), time.Second, &domain.Message{Channel: "#dev"})
	require.NoError(t, err)

	assert.Equal(t, "I am currently in: #dev, #infra", ts.Messages[0])
}

func TestChannelsRespondEmpty(t *testing.T) {
	ts := &MockTransport{}
	channelsHandler := NewChannelsHandler(ts, "channels")

	err := channelsHandler.Respond(context.Background(), time.Second, &domain.Message{Channel: "alice"})
	require.NoError(t, err)

	assert.Equal(t, "I am not in any channels.", ts.Messages[0])
}

func TestJoinRespond(t *testing.T) {
	ts := &MockTransport{}
	joinHandler := NewJoinHandler(ts, "join")

	err := joinHandler.Respond(context.Background(), time.Second, &domain.Message{Args: []string{"#infra"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"#infra"}, ts.Joined)
}

func TestJoinRespondMissingArgs(t *testing.T) {
	ts := &MockTransport{}
	joinHandler := NewJoinHandler(ts, "join")

	err := joinHandler.Respond(context.Background(), time.Second, &domain.Message{Channel: "#dev"})
	require.NoError(t, err)

	assert.Empty(t, ts.Joined)
	assert.Equal(t, "usage: !join <channel>", ts.Messages[0])
}

func TestPartRespondDefaultsToCurrentChannel(t *testing.T) {
	ts := &MockTransport{}
	partHandler := NewPartHandler(ts, "part")

	err := partHandler.Respond(context.Background(), time.Second, &domain.Message{Channel: "#dev"})
	require.NoError(t, err)

	assert.Equal(t, []string{"#dev"}, ts.Parted)
}

func TestPartRespondExplicitChannel(t *testing.T) {
	ts := &MockTransport{}
	partHandler := NewPartHandler(ts, "part")

	err := partHandler.Respond(context.Background(), time.Second, &domain.Message{
		Channel: "#dev",
		Args:    []string{"#infra"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"#infra"}, ts.Parted)
}

func TestLoveRespond(t *testing.T) {
	ts := &MockTransport{}
	loveHandler := NewLoveHandler(ts, "love")

	err := loveHandler.Respond(context.Background(), time.Second, &domain.Message{Channel: "#dev"})
	require.NoError(t, err)

	assert.Equal(t, "<3", ts.Messages[0])
	assert.Empty(t, loveHandler.GetHelp())
}

func TestUnknownRespond(t *testing.T) {
	ts := &MockTransport{}
	unknownHandler := NewUnknownHandler(ts)

	err := unknownHandler.Respond(context.Background(), time.Second, &domain.Message{Channel: "#dev"})
	require.NoError(t, err)

	assert.Equal(t, `I don't know that command. Try "!help".`, ts.Messages[0])
}
