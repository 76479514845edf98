package domain

import (
	"strings"
	"time"
)

// User is the single persisted identity for the service.
//
// Age is carried as a string rather than a number: the upstream data model
// stores it that way and callers only ever trim it, so converting would
// change validation behavior.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Age          string    `json:"age"`
	PasswordHash string    `json:"-"`
	Verified     bool      `json:"verified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserUpdate is a patch: nil fields stay untouched on the stored record.
// Password carries a plaintext candidate; the service hashes it before the
// record reaches storage.
type UserUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	Age       *string
	Password  *string
}

// NormalizeUsername canonicalizes a username for storage and comparison.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// NormalizeEmail canonicalizes an email for storage and comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
