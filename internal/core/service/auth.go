package service

import (
	"context"
	"statbot/internal/core/domain"
	"statbot/internal/core/port"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Manager decides whether a nickname is currently authenticated with the
// network's identity service. A check sends a probe to the services bot and
// waits for the free-text notice it answers with, correlating the notice back
// to the pending check by the nickname embedded in it. At most one probe per
// nickname is in flight at a time; concurrent checks for the same nickname
// share the one probe and receive the same decision.
type Manager struct {
	notifier port.Notifier
	decoder  port.ReplyDecoder
	service  string
	timeout  time.Duration

	mu      sync.Mutex
	pending map[string]*pendingCheck
}

type pendingCheck struct {
	id        uuid.UUID
	nick      string
	createdAt time.Time
	waiters   []*domain.Outcome[bool]
	timer     *time.Timer
}

// NewManager builds a Manager probing the given services nick, resolving
// unanswered checks as untrusted after timeout.
func NewManager(notifier port.Notifier, decoder port.ReplyDecoder, service string, timeout time.Duration) *Manager {
	return &Manager{
		notifier: notifier,
		decoder:  decoder,
		service:  service,
		timeout:  timeout,
		pending:  make(map[string]*pendingCheck),
	}
}

// CheckIdentity starts or joins an identity check for nick. It never blocks
// on the network; the returned outcome resolves exactly once, with false when
// the probe cannot be sent, goes unanswered, or the service does not
// recognize the nickname as authenticated.
func (m *Manager) CheckIdentity(ctx context.Context, nick string) *domain.Outcome[bool] {
	outcome := domain.NewOutcome[bool]()
	key := strings.ToLower(nick)

	m.mu.Lock()
	if p, ok := m.pending[key]; ok {
		p.waiters = append(p.waiters, outcome)
		m.mu.Unlock()

		log.Debug().Stringer("probe", p.id).Str("nick", nick).Msg("joining in-flight identity check")
		return outcome
	}

	p := &pendingCheck{
		id:        uuid.Must(uuid.NewV4()),
		nick:      nick,
		createdAt: time.Now(),
		waiters:   []*domain.Outcome[bool]{outcome},
	}
	p.timer = time.AfterFunc(m.timeout, func() {
		m.expire(key, p.id)
	})
	m.pending[key] = p
	m.mu.Unlock()

	log.Info().Stringer("probe", p.id).Str("nick", nick).Msg("sending identity probe")
	if err := m.notifier.Send(ctx, m.service, "STATUS "+nick); err != nil {
		log.Error().Err(err).Stringer("probe", p.id).Str("nick", nick).Msg("failed to send identity probe")
		m.resolve(key, p.id, false)
	}

	return outcome
}

// NotifyReply feeds one inbound notice into the correlation engine. Notices
// from other sources, text the decoder does not recognize, and replies that
// match no pending check are logged and discarded; NotifyReply never fails.
func (m *Manager) NotifyReply(source, text string) {
	if !strings.EqualFold(source, m.service) {
		log.Debug().Str("source", source).Msg("notice from unexpected source, ignoring")
		return
	}

	nick, verdict := m.decoder.Decode(text)
	if verdict == domain.VerdictUnrecognized {
		log.Debug().Str("text", text).Msg("unrecognized identity service notice, ignoring")
		return
	}

	key := strings.ToLower(nick)

	m.mu.Lock()
	p, ok := m.pending[key]
	if ok {
		delete(m.pending, key)
	}
	m.mu.Unlock()

	if !ok {
		log.Debug().Str("nick", nick).Msg("identity reply matches no pending check, ignoring")
		return
	}

	p.timer.Stop()

	trusted := verdict == domain.VerdictAuthenticated
	log.Info().
		Stringer("probe", p.id).
		Str("nick", p.nick).
		Bool("trusted", trusted).
		Int("waiters", len(p.waiters)).
		Msg("identity check resolved")

	for _, w := range p.waiters {
		w.Succeed(trusted)
	}
}

// resolve settles the pending check for key with the given decision, if it is
// still the probe identified by id.
func (m *Manager) resolve(key string, id uuid.UUID, trusted bool) {
	m.mu.Lock()
	p, ok := m.pending[key]
	if !ok || p.id != id {
		m.mu.Unlock()
		return
	}
	delete(m.pending, key)
	m.mu.Unlock()

	p.timer.Stop()
	for _, w := range p.waiters {
		w.Succeed(trusted)
	}
}

func (m *Manager) expire(key string, id uuid.UUID) {
	m.mu.Lock()
	p, ok := m.pending[key]
	if !ok || p.id != id {
		m.mu.Unlock()
		return
	}
	delete(m.pending, key)
	m.mu.Unlock()

	log.Warn().
		Stringer("probe", id).
		Str("nick", p.nick).
		Dur("waited", time.Since(p.createdAt)).
		Int("waiters", len(p.waiters)).
		Msg("identity probe timed out, resolving as untrusted")

	for _, w := range p.waiters {
		w.Succeed(false)
	}
}
