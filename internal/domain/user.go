package domain

import "strings"

// User is the stored identity record for a storefront customer.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
}

// NormalizeEmail lowercases and trims an email so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
