package auth

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spec-kit/storefront/internal/domain"
)

func newTestAuthenticator(t *testing.T, opts ...TokenOption) (*Authenticator, *SessionRegistry) {
	t.Helper()
	registry := NewSessionRegistry()
	return NewAuthenticator(newTestTokenManager(t, opts...), registry), registry
}

func TestAuthenticator_Lifecycle(t *testing.T) {
	a, registry := newTestAuthenticator(t)

	session, err := a.Open("user-1")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if registry.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", registry.Len())
	}

	identity, err := a.Authenticate(session.Token)
	if err != nil || identity != "user-1" {
		t.Fatalf("Authenticate() = %q, %v; want user-1", identity, err)
	}

	closed, err := a.Close(session.Token)
	if err != nil || closed != "user-1" {
		t.Fatalf("Close() = %q, %v; want user-1", closed, err)
	}
	if _, err := a.Authenticate(session.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Authenticate() after Close error = %v, want ErrSessionNotFound", err)
	}
	if _, err := a.Close(session.Token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("second Close() error = %v, want ErrSessionNotFound", err)
	}
}

func TestAuthenticator_ValidTokenWithoutSession(t *testing.T) {
	a, _ := newTestAuthenticator(t)
	token, _, err := a.tokens.Issue()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Authenticate(token); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Authenticate() error = %v, want ErrSessionNotFound", err)
	}
}

func TestAuthenticator_RegisteredButInvalidToken(t *testing.T) {
	a, registry := newTestAuthenticator(t)
	registry.Insert("forged", "user-1")

	if _, err := a.Authenticate("forged"); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Errorf("Authenticate() error = %v, want ErrTokenMalformed", err)
	}
}

func TestAuthenticator_ExpiredButRegistered(t *testing.T) {
	var now time.Time
	a, registry := newTestAuthenticator(t, WithClock(func() time.Time { return now }))

	now = time.Now()
	session, err := a.Open("user-1")
	if err != nil {
		t.Fatal(err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := a.Authenticate(session.Token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("Authenticate() error = %v, want ErrTokenExpired", err)
	}
	if _, ok := registry.Lookup(session.Token); !ok {
		t.Error("expired entry should stay registered until logout or sweep")
	}

	if removed := a.SweepExpired(); removed != 1 {
		t.Errorf("SweepExpired() = %d, want 1", removed)
	}
	if registry.Len() != 0 {
		t.Errorf("Len() = %d after sweep, want 0", registry.Len())
	}
}

func TestAuthenticator_Concurrent(t *testing.T) {
	const users = 50

	a, registry := newTestAuthenticator(t)
	var g errgroup.Group

	for i := 0; i < users; i++ {
		identity := fmt.Sprintf("user-%d", i)
		logout := i%3 == 0
		g.Go(func() error {
			session, err := a.Open(identity)
			if err != nil {
				return err
			}
			got, err := a.Authenticate(session.Token)
			if err != nil {
				return err
			}
			if got != identity {
				return fmt.Errorf("token for %s resolved to %s", identity, got)
			}
			if logout {
				_, err := a.Close(session.Token)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	loggedOut := (users + 2) / 3
	if want := users - loggedOut; registry.Len() != want {
		t.Errorf("Len() = %d, want %d", registry.Len(), want)
	}
}
