package auth

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when a hash is requested for an empty value.
var ErrEmptyPassword = errors.New("password must not be empty")

// HashPassword hashes a plaintext password with configured cost. Empty
// plaintext is rejected; callers skip the hash step when no password is
// present on the record being persisted.
func HashPassword(password string, cost int) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// IsHash reports whether a value is already a bcrypt digest. Update paths
// that re-save a previously loaded record must not feed the stored digest
// back through HashPassword; a double-hashed digest can never verify.
func IsHash(value string) bool {
	return strings.HasPrefix(value, "$2a$") ||
		strings.HasPrefix(value, "$2b$") ||
		strings.HasPrefix(value, "$2y$")
}
