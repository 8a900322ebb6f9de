package domain

import "errors"

// Sentinel errors shared by the auth subsystem and its callers.
var (
	ErrConfiguration      = errors.New("auth: configuration error")
	ErrTokenMalformed     = errors.New("auth: token malformed")
	ErrTokenExpired       = errors.New("auth: token expired")
	ErrSessionNotFound    = errors.New("auth: no session for token")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrUserNotFound       = errors.New("auth: user not found")
	ErrEmailAlreadyUsed   = errors.New("auth: email already in use")
)

// ErrEmptyCart is returned when an order is placed with nothing in the cart.
var ErrEmptyCart = errors.New("cart is empty")
