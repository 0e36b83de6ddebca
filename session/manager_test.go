package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realtyhub/models"
	"realtyhub/utils"
)

// memStore mimics durable storage that outlives a Manager.
type memStore struct {
	slots   map[string]string
	loadErr error
	saveErr error
	loads   int
}

func newMemStore() *memStore { return &memStore{slots: map[string]string{}} }

func (s *memStore) Load() (models.Session, bool, error) {
	s.loads++
	if s.loadErr != nil {
		return models.Session{}, false, s.loadErr
	}
	if s.slots["isAuthenticated"] != "true" || s.slots["userEmail"] == "" {
		return models.Session{}, false, nil
	}
	return models.Session{Email: s.slots["userEmail"], DisplayName: s.slots["userName"]}, true, nil
}

func (s *memStore) Save(sess models.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.slots = map[string]string{"isAuthenticated": "true", "userEmail": sess.Email}
	if sess.DisplayName != "" {
		s.slots["userName"] = sess.DisplayName
	}
	return nil
}

func (s *memStore) Clear() error {
	s.slots = map[string]string{}
	return nil
}

// gatedProvider blocks every attempt until release is closed.
type gatedProvider struct {
	AlwaysAcceptProvider
	release chan struct{}
}

func (p gatedProvider) SignIn(ctx context.Context, c Credentials) (models.Session, error) {
	<-p.release
	return p.AlwaysAcceptProvider.SignIn(ctx, c)
}

type rejectingProvider struct{}

func (rejectingProvider) SignIn(context.Context, Credentials) (models.Session, error) {
	return models.Session{}, ErrInvalidCredentials
}

func (rejectingProvider) SignUp(context.Context, models.Profile) (models.Session, error) {
	return models.Session{}, ErrInvalidCredentials
}

func newManager(t *testing.T, store Store) *Manager {
	t.Helper()
	m := NewManager(store, AlwaysAcceptProvider{}, utils.NewNopLogger())
	require.NoError(t, m.Hydrate())
	return m
}

func TestManagerStartsLoading(t *testing.T) {
	m := NewManager(newMemStore(), AlwaysAcceptProvider{}, nil)
	assert.Equal(t, StatusLoading, m.Status())

	_, err := m.BeginSignIn(context.Background(), "a@b.com", "x")
	assert.ErrorIs(t, err, ErrNotHydrated)
	assert.ErrorIs(t, m.SignOut(), ErrNotHydrated)

	require.NoError(t, m.Hydrate())
	assert.Equal(t, StatusAnonymous, m.Status())
}

func TestHydrateRunsOnce(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, AlwaysAcceptProvider{}, nil)

	require.NoError(t, m.Hydrate())
	require.NoError(t, m.Hydrate())
	assert.Equal(t, 1, store.loads)
}

func TestHydrateFailureStartsAnonymous(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("disk on fire")
	m := NewManager(store, AlwaysAcceptProvider{}, nil)

	assert.ErrorIs(t, m.Hydrate(), store.loadErr)
	assert.Equal(t, StatusAnonymous, m.Status())
}

func TestSignInPersists(t *testing.T) {
	store := newMemStore()
	m := newManager(t, store)

	s, err := m.SignIn(context.Background(), "a@b.com", "x")
	require.NoError(t, err)
	assert.Equal(t, models.Session{Email: "a@b.com"}, s)
	assert.Equal(t, StatusAuthenticated, m.Status())

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "a@b.com", cur.Email)
	assert.Equal(t, "a@b.com", store.slots["userEmail"])
	assert.Equal(t, "true", store.slots["isAuthenticated"])
}

func TestSignUpComposesDisplayName(t *testing.T) {
	store := newMemStore()
	m := newManager(t, store)

	s, err := m.SignUp(context.Background(), models.Profile{
		FirstName: "Priya", LastName: "Sharma", Email: "priya@example.com", Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", s.DisplayName)
	assert.Equal(t, "Priya Sharma", store.slots["userName"])
}

func TestSignInAfterSignUpDropsStaleName(t *testing.T) {
	store := newMemStore()
	m := newManager(t, store)

	_, err := m.SignUp(context.Background(), models.Profile{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "pw"})
	require.NoError(t, err)
	_, err = m.SignIn(context.Background(), "c@d.com", "pw")
	require.NoError(t, err)

	restarted := newManager(t, store)
	cur, ok := restarted.Current()
	require.True(t, ok)
	assert.Equal(t, models.Session{Email: "c@d.com"}, cur)
}

func TestRestartRestoresSession(t *testing.T) {
	store := newMemStore()
	m := newManager(t, store)
	_, err := m.SignIn(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	restarted := newManager(t, store)
	assert.Equal(t, StatusAuthenticated, restarted.Status())
	cur, _ := restarted.Current()
	assert.Equal(t, "a@b.com", cur.Email)
}

func TestSignOutThenRestartIsAnonymous(t *testing.T) {
	store := newMemStore()
	m := newManager(t, store)
	_, err := m.SignIn(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	require.NoError(t, m.SignOut())
	assert.Equal(t, StatusAnonymous, m.Status())
	assert.Empty(t, store.slots)

	restarted := newManager(t, store)
	assert.Equal(t, StatusAnonymous, restarted.Status())
	assert.False(t, restarted.IsAuthenticated())
}

func TestMissingCredentials(t *testing.T) {
	m := newManager(t, newMemStore())

	_, err := m.SignIn(context.Background(), "  ", "x")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, err = m.SignIn(context.Background(), "a@b.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, err = m.SignUp(context.Background(), models.Profile{FirstName: "A", Password: "pw"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	assert.Equal(t, StatusAnonymous, m.Status())
}

func TestPendingStateWhileProviderWaits(t *testing.T) {
	store := newMemStore()
	provider := gatedProvider{release: make(chan struct{})}
	m := NewManager(store, provider, nil)
	require.NoError(t, m.Hydrate())

	p, err := m.BeginSignIn(context.Background(), "a@b.com", "x")
	require.NoError(t, err)

	assert.Equal(t, StatusPending, m.Status())
	assert.False(t, p.Resolved())
	assert.False(t, m.IsAuthenticated())
	assert.Empty(t, store.slots)

	close(provider.release)
	s, err := p.Wait()
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", s.Email)
	assert.True(t, p.Resolved())
	assert.Equal(t, StatusAuthenticated, m.Status())
}

func TestProviderRejection(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, rejectingProvider{}, nil)
	require.NoError(t, m.Hydrate())

	_, err := m.SignIn(context.Background(), "a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, StatusAnonymous, m.Status())
	assert.Empty(t, store.slots)
}

func TestCancelledAttemptLeavesSessionUnchanged(t *testing.T) {
	store := newMemStore()
	m := NewManager(store, AlwaysAcceptProvider{Delay: time.Hour}, nil)
	require.NoError(t, m.Hydrate())

	ctx, cancel := context.WithCancel(context.Background())
	p, err := m.BeginSignIn(ctx, "a@b.com", "x")
	require.NoError(t, err)
	cancel()

	_, err = p.Wait()
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusAnonymous, m.Status())
}

func TestSaveFailureKeepsPreviousIdentity(t *testing.T) {
	store := newMemStore()
	m := newManager(t, store)
	_, err := m.SignIn(context.Background(), "old@b.com", "x")
	require.NoError(t, err)

	store.saveErr = errors.New("read-only")
	_, err = m.SignIn(context.Background(), "new@b.com", "x")
	assert.ErrorIs(t, err, store.saveErr)

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "old@b.com", cur.Email)
	assert.Equal(t, StatusAuthenticated, m.Status())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "Status(9)", Status(9).String())
}
