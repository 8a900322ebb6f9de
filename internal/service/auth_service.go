package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront/internal/auth"
	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/events"
	"github.com/spec-kit/storefront/internal/repository"
)

// AuthService coordinates registration, login and logout.
type AuthService struct {
	users         repository.UserRepository
	authenticator *auth.Authenticator
	events        events.Dispatcher
	bcryptCost    int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo      repository.UserRepository
	Authenticator *auth.Authenticator
	Dispatcher    events.Dispatcher
	BcryptCost    int
}

// NewAuthService builds the service.
func NewAuthService(deps AuthDependencies) *AuthService {
	return &AuthService{
		users:         deps.UserRepo,
		authenticator: deps.Authenticator,
		events:        deps.Dispatcher,
		bcryptCost:    deps.BcryptCost,
	}
}

// RegisterUser creates a new account. The email is stored lowercased.
func (s *AuthService) RegisterUser(ctx context.Context, username, email, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailAlreadyUsed
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{Type: events.EventUserRegistered, UserID: user.ID})
	return user, nil
}

// Login verifies credentials and opens a session for the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Session, error) {
	email = domain.NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, pgx.ErrNoRows) {
		s.loginFailed(ctx, email, "user_not_found")
		return domain.Session{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.Session{}, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		s.loginFailed(ctx, email, "invalid_credentials")
		return domain.Session{}, domain.ErrInvalidCredentials
	}

	session, err := s.authenticator.Open(user.ID)
	if err != nil {
		return domain.Session{}, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventSessionOpened,
		UserID:  user.ID,
		Payload: events.SessionOpenedPayload{ExpiresAt: session.ExpiresAt},
	})
	return session, nil
}

// Logout revokes the session bound to token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	identity, err := s.authenticator.Close(token)
	if err != nil {
		return err
	}
	s.publish(ctx, events.Event{Type: events.EventSessionClosed, UserID: identity})
	return nil
}

// Authenticate resolves token to the logged-in identity.
func (s *AuthService) Authenticate(token string) (string, error) {
	return s.authenticator.Authenticate(token)
}

func (s *AuthService) loginFailed(ctx context.Context, email, reason string) {
	s.publish(ctx, events.Event{
		Type:    events.EventLoginFailed,
		Payload: events.LoginFailedPayload{Email: email, Reason: reason},
	})
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.events == nil {
		return
	}
	// audit handlers only log; a failure there must not fail the request
	_ = s.events.Publish(ctx, event)
}
