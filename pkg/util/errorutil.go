package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/storefront/internal/domain"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

func NewNotFound(resource string, details map[string]any) error {
	if details == nil {
		details = map[string]any{}
	}
	return &DomainError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    details,
	}
}

func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

func NewConflict(message string, details map[string]any) error {
	return NewDomainError("CONFLICT", message, http.StatusConflict, details)
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

type sentinelMapping struct {
	target  error
	code    string
	message string
	status  int
}

// Checked in order; the first match wins.
var sentinelMappings = []sentinelMapping{
	{domain.ErrTokenExpired, "TOKEN_EXPIRED", "token expired, please login again", http.StatusUnauthorized},
	{domain.ErrTokenMalformed, "TOKEN_INVALID", "token invalid, please login again", http.StatusUnauthorized},
	{domain.ErrSessionNotFound, "SESSION_NOT_FOUND", "no session found for token, please login again", http.StatusUnauthorized},
	{domain.ErrInvalidCredentials, "INVALID_CREDENTIALS", "incorrect password", http.StatusUnauthorized},
	{domain.ErrUserNotFound, "USER_NOT_FOUND", "user not found", http.StatusNotFound},
	{domain.ErrEmailAlreadyUsed, "EMAIL_IN_USE", "email already in use", http.StatusConflict},
	{domain.ErrEmptyCart, "CART_EMPTY", "cart is empty", http.StatusBadRequest},
}

// ToDomainError converts generic errors to DomainError. Unknown errors become
// a generic internal error whose message never includes the cause.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	for _, m := range sentinelMappings {
		if errors.Is(err, m.target) {
			return &DomainError{Code: m.code, Message: m.message, HTTPStatus: m.status, Err: err}
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		de := NewNotFound("resource", nil).(*DomainError)
		de.Err = err
		return de
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &DomainError{Code: codeForStatus(fiberErr.Code), Message: fiberErr.Message, HTTPStatus: fiberErr.Code}
	}
	return NewInternalError(err).(*DomainError)
}

// MapError is ToDomainError typed as error for handler returns.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	return ToDomainError(err)
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusServiceUnavailable:
		return "DEPENDENCY_UNAVAILABLE"
	}
	if status >= http.StatusInternalServerError {
		return "INTERNAL_ERROR"
	}
	return "REQUEST_FAILED"
}
