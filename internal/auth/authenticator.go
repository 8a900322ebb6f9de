package auth

import (
	"time"

	"github.com/spec-kit/storefront/internal/domain"
)

// Authenticator owns the token codec and the session registry and is the
// single place where a bearer token is turned into an identity.
type Authenticator struct {
	tokens   *TokenManager
	sessions *SessionRegistry
}

// NewAuthenticator composes a codec and a registry.
func NewAuthenticator(tokens *TokenManager, sessions *SessionRegistry) *Authenticator {
	return &Authenticator{tokens: tokens, sessions: sessions}
}

// Authenticate validates token and resolves the identity bound to it.
func (a *Authenticator) Authenticate(token string) (string, error) {
	if err := a.tokens.Validate(token); err != nil {
		return "", err
	}
	identity, ok := a.sessions.Lookup(token)
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return identity, nil
}

// Open mints a token for identity and registers it.
func (a *Authenticator) Open(identity string) (domain.Session, error) {
	token, expiresAt, err := a.tokens.Issue()
	if err != nil {
		return domain.Session{}, err
	}
	a.sessions.Insert(token, identity)
	return domain.Session{Token: token, Identity: identity, ExpiresAt: expiresAt}, nil
}

// Close revokes token and returns the identity it belonged to. It returns
// domain.ErrSessionNotFound when the token was not registered. The token is
// not validated first, so expired sessions can still be closed.
func (a *Authenticator) Close(token string) (string, error) {
	identity, ok := a.sessions.Take(token)
	if !ok {
		return "", domain.ErrSessionNotFound
	}
	return identity, nil
}

// SweepExpired drops registry entries whose tokens no longer validate.
func (a *Authenticator) SweepExpired() int {
	return a.sessions.Sweep(func(token string) bool {
		return a.tokens.Validate(token) == nil
	})
}

// TokenTTL exposes the lifetime of issued tokens.
func (a *Authenticator) TokenTTL() time.Duration {
	return a.tokens.TTL()
}
