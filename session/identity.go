package session

import (
	"context"
	"time"

	"realtyhub/models"
)

// DefaultDelay is the simulated round trip of AlwaysAcceptProvider.
const DefaultDelay = time.Second

// Credentials are the sign-in form fields.
type Credentials struct {
	Email    string
	Password string
}

// IdentityProvider verifies credentials and returns the resulting identity.
// Implementations backed by a real service return ErrInvalidCredentials on
// rejection.
type IdentityProvider interface {
	SignIn(ctx context.Context, creds Credentials) (models.Session, error)
	SignUp(ctx context.Context, profile models.Profile) (models.Session, error)
}

// AlwaysAcceptProvider accepts every credential after Delay. It stands in
// for an identity service during development.
type AlwaysAcceptProvider struct {
	Delay time.Duration
}

func (p AlwaysAcceptProvider) SignIn(ctx context.Context, creds Credentials) (models.Session, error) {
	if err := p.wait(ctx); err != nil {
		return models.Session{}, err
	}
	return models.Session{Email: creds.Email}, nil
}

func (p AlwaysAcceptProvider) SignUp(ctx context.Context, profile models.Profile) (models.Session, error) {
	if err := p.wait(ctx); err != nil {
		return models.Session{}, err
	}
	return models.Session{Email: profile.Email, DisplayName: profile.FullName()}, nil
}

func (p AlwaysAcceptProvider) wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
