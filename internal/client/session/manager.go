package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/contentdesk/internal/logging"
)

// Manager serializes every mutation of the session value. Readers get a
// snapshot copy, so no caller can observe a half-updated role/token pair.
type Manager struct {
	mu      sync.Mutex
	storage Storage
	logger  logging.Logger
	now     func() time.Time
	current *Session
}

func NewManager(storage Storage, logger logging.Logger) *Manager {
	return &Manager{
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Restore loads a previously persisted credential on cold start. A missing,
// undecodable or expired credential is erased and treated as logged-out;
// no error surfaces to the caller.
func (m *Manager) Restore() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	token, err := m.storage.Load()
	if err != nil {
		m.logger.Warn(context.Background(), "credential load failed", "error", err)
		return nil
	}
	if token == "" {
		return nil
	}

	s, err := DecodeToken(token, m.now())
	if err != nil {
		m.logger.Info(context.Background(), "discarding stored credential", "reason", err)
		if cerr := m.storage.Clear(); cerr != nil {
			m.logger.Warn(context.Background(), "credential clear failed", "error", cerr)
		}
		return nil
	}

	m.current = s
	return snapshot(s)
}

// Login decodes the token, persists it, and swaps the in-memory session, in
// that order. If any step fails the previous state is left intact, so the
// operation is atomic from the caller's point of view.
func (m *Manager) Login(token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, err := DecodeToken(token, m.now())
	if err != nil {
		return nil, err
	}
	if err := m.storage.Save(token); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}

	m.current = s
	return snapshot(s), nil
}

// Logout erases the persisted credential and clears the in-memory session.
// Calling it when already logged out is a no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
	if err := m.storage.Clear(); err != nil {
		m.logger.Warn(context.Background(), "credential clear failed", "error", err)
	}
}

// Current returns a snapshot of the session, or nil when logged out. Expiry
// is re-checked on every read; a stale session is silently downgraded to
// logged-out, persistence included, so a stale credential can never gate a
// view open.
func (m *Manager) Current() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil
	}
	if m.current.Expired(m.now()) {
		m.logger.Info(context.Background(), "session expired", "email", m.current.Email)
		m.current = nil
		if err := m.storage.Clear(); err != nil {
			m.logger.Warn(context.Background(), "credential clear failed", "error", err)
		}
		return nil
	}
	return snapshot(m.current)
}

// Token returns the bearer credential for outgoing requests, applying the
// same expiry downgrade as Current.
func (m *Manager) Token() (string, bool) {
	s := m.Current()
	if s == nil {
		return "", false
	}
	return s.Token, true
}

func snapshot(s *Session) *Session {
	c := *s
	return &c
}
