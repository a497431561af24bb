package commands

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/domain/command"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpRespondListsCommandsInOrder(t *testing.T) {
	ts := &MockTransport{}
	registry := command.NewRegistry(NewUnknownHandler(ts))
	registry.Register(NewPingHandler(ts, "ping"))
	registry.Register(NewChannelsHandler(ts, "channels"))
	registry.Register(NewLoveHandler(ts, "love"))

	helpHandler := NewHelpHandler(registry, ts, "help")
	registry.Register(helpHandler)

	err := helpHandler.Respond(context.Background(), time.Second, &domain.Message{Channel: "#dev"})
	require.NoError(t, err)

	require.Len(t, ts.Messages, 1)
	assert.Equal(t,
		"channels: list the channels I am in (usage: !channels)\n"+
			"help: list available commands (usage: !help)\n"+
			"ping: check whether I am alive (usage: !ping)",
		ts.Messages[0])
}
