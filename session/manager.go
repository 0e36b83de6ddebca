// Package session tracks the current user identity and keeps it in durable
// storage so it survives restarts.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"realtyhub/models"
	"realtyhub/utils"
)

var (
	ErrNotHydrated        = errors.New("session: manager not hydrated")
	ErrMissingCredentials = errors.New("session: email and password are required")
	ErrInvalidCredentials = errors.New("session: invalid credentials")
)

// Store is the durable slot holding the persisted identity. Load reports
// false when nothing is stored.
type Store interface {
	Load() (models.Session, bool, error)
	Save(s models.Session) error
	Clear() error
}

// Status is the externally visible state of a Manager.
type Status int

const (
	StatusLoading Status = iota
	StatusAnonymous
	StatusPending
	StatusAuthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAnonymous:
		return "anonymous"
	case StatusPending:
		return "pending"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Manager owns the session. The store is the source of truth; the in-memory
// session is a cache of it, filled by Hydrate and kept in step by every
// transition.
type Manager struct {
	store    Store
	provider IdentityProvider
	logger   *utils.Logger

	hydrateOnce sync.Once
	hydrateErr  error

	mu       sync.RWMutex
	hydrated bool
	current  *models.Session
	inflight int
}

// NewManager builds a Manager in the loading state. Call Hydrate before use.
func NewManager(store Store, provider IdentityProvider, logger *utils.Logger) *Manager {
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	return &Manager{store: store, provider: provider, logger: logger}
}

// Hydrate restores the persisted identity. Only the first call reads the
// store; later calls return the first result. A failed read leaves the
// manager anonymous but ready.
func (m *Manager) Hydrate() error {
	m.hydrateOnce.Do(func() {
		s, ok, err := m.store.Load()

		m.mu.Lock()
		defer m.mu.Unlock()
		m.hydrated = true

		if err != nil {
			m.hydrateErr = fmt.Errorf("session: hydrate: %w", err)
			m.logger.Warn("[session] Could not read stored session, starting anonymous: %v", err)
			return
		}
		if ok {
			m.current = &s
			m.logger.Debug("[session] Restored session for %s", s.Email)
		}
	})
	return m.hydrateErr
}

// Status reports the current state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case !m.hydrated:
		return StatusLoading
	case m.inflight > 0:
		return StatusPending
	case m.current != nil:
		return StatusAuthenticated
	default:
		return StatusAnonymous
	}
}

// Current returns the authenticated identity. While an attempt is pending
// it still reports the identity held before the attempt started.
func (m *Manager) Current() (models.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return models.Session{}, false
	}
	return *m.current, true
}

// IsAuthenticated reports whether an identity is held.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// BeginSignIn starts a sign-in attempt and returns its handle immediately.
func (m *Manager) BeginSignIn(ctx context.Context, email, password string) (*Pending, error) {
	creds := Credentials{Email: strings.TrimSpace(email), Password: password}
	if creds.Email == "" || creds.Password == "" {
		return nil, ErrMissingCredentials
	}

	return m.begin(func() (models.Session, error) {
		return m.provider.SignIn(ctx, creds)
	})
}

// SignIn signs in and blocks until the attempt completes.
func (m *Manager) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	p, err := m.BeginSignIn(ctx, email, password)
	if err != nil {
		return models.Session{}, err
	}
	return p.Wait()
}

// BeginSignUp starts a sign-up attempt and returns its handle immediately.
// The resulting display name is the first and last name joined by a space.
func (m *Manager) BeginSignUp(ctx context.Context, profile models.Profile) (*Pending, error) {
	profile.Email = strings.TrimSpace(profile.Email)
	if profile.Email == "" || profile.Password == "" {
		return nil, ErrMissingCredentials
	}

	return m.begin(func() (models.Session, error) {
		return m.provider.SignUp(ctx, profile)
	})
}

// SignUp registers and blocks until the attempt completes.
func (m *Manager) SignUp(ctx context.Context, profile models.Profile) (models.Session, error) {
	p, err := m.BeginSignUp(ctx, profile)
	if err != nil {
		return models.Session{}, err
	}
	return p.Wait()
}

// SignOut removes the persisted identity and returns to the anonymous state.
func (m *Manager) SignOut() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.hydrated {
		return ErrNotHydrated
	}
	if err := m.store.Clear(); err != nil {
		return fmt.Errorf("session: sign out: %w", err)
	}
	if m.current != nil {
		m.logger.Info("[session] Signed out %s", m.current.Email)
	}
	m.current = nil
	return nil
}

func (m *Manager) begin(attempt func() (models.Session, error)) (*Pending, error) {
	m.mu.Lock()
	if !m.hydrated {
		m.mu.Unlock()
		return nil, ErrNotHydrated
	}
	m.inflight++
	m.mu.Unlock()

	p := newPending()
	go func() {
		s, err := attempt()
		if err == nil {
			err = m.commit(s)
		} else {
			m.release()
		}
		p.resolve(s, err)
	}()
	return p, nil
}

// commit persists s and makes it current. The store is written first so a
// failed write leaves the previous identity in place.
func (m *Manager) commit(s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight--

	if err := m.store.Save(s); err != nil {
		m.logger.Error("[session] Could not persist session for %s: %v", s.Email, err)
		return fmt.Errorf("session: persist: %w", err)
	}
	m.current = &s
	m.logger.Info("[session] Signed in as %s", s.Email)
	return nil
}

func (m *Manager) release() {
	m.mu.Lock()
	m.inflight--
	m.mu.Unlock()
}
