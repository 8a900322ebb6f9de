package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered EventType = "user_registered"
	EventSessionOpened  EventType = "session_opened"
	EventSessionClosed  EventType = "session_closed"
	EventLoginFailed    EventType = "login_failed"
	EventOrderPlaced    EventType = "order_placed"
)

// AllEventTypes lists every event type, for subscribers that want them all.
var AllEventTypes = []EventType{
	EventUserRegistered,
	EventSessionOpened,
	EventSessionClosed,
	EventLoginFailed,
	EventOrderPlaced,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// SessionOpenedPayload payload.
type SessionOpenedPayload struct {
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginFailedPayload payload. Reason is one of "user_not_found" or
// "invalid_credentials".
type LoginFailedPayload struct {
	Email  string `json:"email"`
	Reason string `json:"reason"`
}

// OrderPlacedPayload payload.
type OrderPlacedPayload struct {
	OrderID   int64    `json:"order_id"`
	TotalCost *float64 `json:"total_cost,omitempty"`
}
