package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/storefront/internal/domain"
	"github.com/spec-kit/storefront/internal/observability"
	apperrors "github.com/spec-kit/storefront/pkg/util"
)

const identityKey = observability.IdentityLocal

// Middleware guards protected routes with the Authenticator.
type Middleware struct {
	authenticator *Authenticator
}

// NewMiddleware constructs middleware.
func NewMiddleware(authenticator *Authenticator) *Middleware {
	return &Middleware{authenticator: authenticator}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token, err := BearerToken(c)
	if err != nil {
		return err
	}

	identity, err := m.authenticator.Authenticate(token)
	if err != nil {
		return apperrors.MapError(err)
	}

	c.Locals(identityKey, identity)
	return c.Next()
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", apperrors.NewUnauthorized("invalid authorization header")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", apperrors.MapError(domain.ErrTokenMalformed)
	}
	return token, nil
}

// IdentityFromContext retrieves the authenticated identity.
func IdentityFromContext(c *fiber.Ctx) (string, bool) {
	identity, ok := c.Locals(identityKey).(string)
	return identity, ok && identity != ""
}
