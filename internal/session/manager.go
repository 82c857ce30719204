package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrNoSession is returned when no token has been imported yet.
	ErrNoSession = errors.New("no Garmin session: run freestride-login first")

	// ErrSessionExpired is returned when the stored access token is stale.
	ErrSessionExpired = errors.New("Garmin session expired")
)

// Manager serves the persisted token as a bearer token source, failing
// fast when the session is absent or expired so callers never reach the
// Connect API with a dead session.
type Manager struct {
	store *Store

	mu     sync.Mutex
	cached *Token
}

// NewManager creates a Manager backed by the given store.
func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Token returns the current access token.
func (m *Manager) Token(_ context.Context) (string, error) {
	t, err := m.current()
	if err != nil {
		return "", err
	}
	if t.Expired() {
		return "", fmt.Errorf("%w at %s; run freestride-login again",
			ErrSessionExpired, time.Unix(t.ExpiresAt, 0).UTC().Format(time.RFC3339))
	}
	return t.AccessToken, nil
}

// Valid reports whether a non-expired session is available.
func (m *Manager) Valid() bool {
	t, err := m.current()
	return err == nil && !t.Expired()
}

func (m *Manager) current() (*Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cached != nil {
		return m.cached, nil
	}
	t, err := m.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if t == nil {
		return nil, ErrNoSession
	}
	m.cached = t
	return t, nil
}
