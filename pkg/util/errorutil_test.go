package util

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront/internal/domain"
)

func TestToDomainError_Sentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"expired", domain.ErrTokenExpired, http.StatusUnauthorized, "TOKEN_EXPIRED"},
		{"malformed wrapped", fmt.Errorf("%w: bad signature", domain.ErrTokenMalformed), http.StatusUnauthorized, "TOKEN_INVALID"},
		{"session", domain.ErrSessionNotFound, http.StatusUnauthorized, "SESSION_NOT_FOUND"},
		{"password", domain.ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"user", domain.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"email", domain.ErrEmailAlreadyUsed, http.StatusConflict, "EMAIL_IN_USE"},
		{"no rows", pgx.ErrNoRows, http.StatusNotFound, "NOT_FOUND"},
		{"fiber", fiber.NewError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToDomainError(tt.err)
			if got.HTTPStatus != tt.wantStatus {
				t.Errorf("HTTPStatus = %d, want %d", got.HTTPStatus, tt.wantStatus)
			}
			if got.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", got.Code, tt.wantCode)
			}
			if !errors.Is(got, tt.err) && tt.name != "fiber" {
				t.Errorf("mapped error lost its cause %v", tt.err)
			}
		})
	}
}

func TestToDomainError_InternalHidesCause(t *testing.T) {
	got := ToDomainError(errors.New("pq: relation users does not exist"))
	if got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("HTTPStatus = %d, want 500", got.HTTPStatus)
	}
	if strings.Contains(got.Message, "relation") {
		t.Errorf("Message leaks cause: %q", got.Message)
	}
}

func TestToDomainError_PassesThroughDomainError(t *testing.T) {
	original := NewConflict("taken", nil)
	if got := ToDomainError(fmt.Errorf("wrap: %w", original)); got != original {
		t.Errorf("ToDomainError() = %v, want original", got)
	}
	if MapError(nil) != nil {
		t.Error("MapError(nil) should be nil")
	}
}
