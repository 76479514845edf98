package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "securePassword123!",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
		{
			name:     "whitespace only",
			password: "   ",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password, bcrypt.MinCost)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrEmptyPassword)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NoError(t, ComparePassword(hash, tt.password))
			assert.Error(t, ComparePassword(hash, tt.password+"x"))
		})
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("same-password", bcrypt.MinCost)
	assert.NoError(t, err)
	second, err := HashPassword("same-password", bcrypt.MinCost)
	assert.NoError(t, err)

	// Randomized salt: same plaintext, different digests, both verify.
	assert.NotEqual(t, first, second)
	assert.NoError(t, ComparePassword(first, "same-password"))
	assert.NoError(t, ComparePassword(second, "same-password"))
}

func TestIsHash(t *testing.T) {
	hash, err := HashPassword("some-password", bcrypt.MinCost)
	assert.NoError(t, err)

	assert.True(t, IsHash(hash))
	assert.False(t, IsHash("some-password"))
	assert.False(t, IsHash(""))
	assert.False(t, IsHash("$1$not-bcrypt"))
}
