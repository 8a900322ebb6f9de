package dto

import "time"

// CreateUserRequest payload for new users.
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"user_email"`
	Password string `json:"user_password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"user_email"`
	Password string `json:"user_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"user_email"`
}
