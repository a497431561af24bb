package handler

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/domain/command"
	"statbot/internal/core/port"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockTransport struct {
	nick     string
	Messages []string
}

func (m *MockTransport) Send(_ context.Context, _, text string) error {
	m.Messages = append(m.Messages, text)
	return nil
}

func (m *MockTransport) Join(_ string)             {}
func (m *MockTransport) Part(_ string)             {}
func (m *MockTransport) CurrentChannels() []string { return nil }
func (m *MockTransport) Nick() string              { return m.nick }

type MockAuthorizer struct {
	trusted bool
	Calls   int
	Nicks   []string
}

func (m *MockAuthorizer) CheckIdentity(_ context.Context, nick string) *domain.Outcome[bool] {
	m.Calls++
	m.Nicks = append(m.Nicks, nick)
	return domain.Succeeded(m.trusted)
}

type MockCommand struct {
	command    string
	privileged bool
	panicWith  any
	Calls      int
	Last       *domain.Message
}

func (m *MockCommand) Respond(_ context.Context, _ time.Duration, message *domain.Message) error {
	m.Calls++
	m.Last = message
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	return nil
}

func (m *MockCommand) GetCommand() string { return m.command }
func (m *MockCommand) GetUsage() string   { return "!" + m.command }
func (m *MockCommand) GetHelp() string    { return "" }
func (m *MockCommand) Privileged() bool   { return m.privileged }

func newTestDispatch(auth *MockAuthorizer, cmds ...port.Command) (*Dispatch, *MockCommand) {
	fallback := &MockCommand{command: "unknown"}
	registry := command.NewRegistry(fallback)
	for _, c := range cmds {
		registry.Register(c)
	}
	return NewDispatch(registry, auth, &MockTransport{nick: "bot"}, time.Second), fallback
}

func TestHandleIgnoresUnaddressedMessages(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	ping := &MockCommand{command: "ping"}
	d, fallback := newTestDispatch(auth, ping)

	d.Handle(context.Background(), "alice", "#dev", "hello everyone")
	d.Handle(context.Background(), "alice", "#dev", "botsomething: !ping")
	d.Handle(context.Background(), "alice", "#dev", "bot !ping")

	assert.Zero(t, ping.Calls)
	assert.Zero(t, fallback.Calls)
	assert.Zero(t, auth.Calls)
}

func TestHandleDispatchesExplicitCommand(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	ping := &MockCommand{command: "ping"}
	d, _ := newTestDispatch(auth, ping)

	d.Handle(context.Background(), "alice", "#dev", "bot: !ping")

	require.Equal(t, 1, ping.Calls)
	assert.Equal(t, "alice", ping.Last.Nick)
	assert.Equal(t, "#dev", ping.Last.Channel)
	assert.Empty(t, ping.Last.Args)
}

func TestHandleAcceptsCommaSeparator(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	ping := &MockCommand{command: "ping"}
	d, _ := newTestDispatch(auth, ping)

	d.Handle(context.Background(), "alice", "#dev", "bot, !ping")

	assert.Equal(t, 1, ping.Calls)
}

func TestHandlePassesParsedArgs(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	del := &MockCommand{command: "delete"}
	d, _ := newTestDispatch(auth, del)

	d.Handle(context.Background(), "alice", "#dev", "bot: !delete #42 extra")

	require.Equal(t, 1, del.Calls)
	assert.Equal(t, []string{"#42", "extra"}, del.Last.Args)
}

func TestHandleUnknownCommandFallsBack(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	d, fallback := newTestDispatch(auth)

	d.Handle(context.Background(), "alice", "#dev", "bot: !nosuchthing")

	assert.Equal(t, 1, fallback.Calls)
}

func TestHandlePrivilegedDeniedIsSilentNoOp(t *testing.T) {
	auth := &MockAuthorizer{trusted: false}
	del := &MockCommand{command: "delete", privileged: true}
	transport := &MockTransport{nick: "bot"}
	registry := command.NewRegistry(&MockCommand{command: "unknown"})
	registry.Register(del)
	d := NewDispatch(registry, auth, transport, time.Second)

	d.Handle(context.Background(), "alice", "#dev", "bot: !delete 42")

	assert.Equal(t, 1, auth.Calls)
	assert.Zero(t, del.Calls)
	assert.Empty(t, transport.Messages)
}

func TestHandlePrivilegedRunsWhenTrusted(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	del := &MockCommand{command: "delete", privileged: true}
	d, _ := newTestDispatch(auth, del)

	d.Handle(context.Background(), "alice", "#dev", "bot: !delete 42")

	assert.Equal(t, 1, auth.Calls)
	assert.Equal(t, []string{"alice"}, auth.Nicks)
	assert.Equal(t, 1, del.Calls)
}

func TestHandleUnprivilegedSkipsIdentityCheck(t *testing.T) {
	auth := &MockAuthorizer{trusted: false}
	ping := &MockCommand{command: "ping"}
	d, _ := newTestDispatch(auth, ping)

	d.Handle(context.Background(), "alice", "#dev", "bot: !ping")

	assert.Zero(t, auth.Calls)
	assert.Equal(t, 1, ping.Calls)
}

func TestHandleReservedPhraseRoutesToLove(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	love := &MockCommand{command: "love"}
	d, _ := newTestDispatch(auth, love)

	d.Handle(context.Background(), "alice", "#dev", "bot: I Love You")

	assert.Equal(t, 1, love.Calls)
}

func TestHandleImplicitStatusPost(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	status := &MockCommand{command: "status"}
	d, _ := newTestDispatch(auth, status)

	d.Handle(context.Background(), "alice", "#dev", "bot: shipped the release")

	require.Equal(t, 1, status.Calls)
	assert.Equal(t, []string{"#dev", "shipped the release"}, status.Last.Args)
}

func TestHandleContainsPanickingHandler(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	bad := &MockCommand{command: "ping", panicWith: "boom"}
	d, _ := newTestDispatch(auth, bad)

	assert.NotPanics(t, func() {
		d.Handle(context.Background(), "alice", "#dev", "bot: !ping")
	})

	// the loop keeps working afterwards
	good := &MockCommand{command: "pong"}
	d2, _ := newTestDispatch(auth, good)
	d2.Handle(context.Background(), "alice", "#dev", "bot: !pong")
	assert.Equal(t, 1, good.Calls)
}

func TestHandlePrivateMessageRepliesToSender(t *testing.T) {
	auth := &MockAuthorizer{trusted: true}
	ping := &MockCommand{command: "ping"}
	d, _ := newTestDispatch(auth, ping)

	d.Handle(context.Background(), "alice", "bot", "bot: !ping")

	require.Equal(t, 1, ping.Calls)
	assert.Equal(t, "alice", ping.Last.Channel)
}
