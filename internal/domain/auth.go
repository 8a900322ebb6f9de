package domain

import "time"

// Session describes a freshly opened login session.
type Session struct {
	Token     string
	Identity  string
	ExpiresAt time.Time
}
