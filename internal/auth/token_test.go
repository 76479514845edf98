package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, exp, err := tm.GenerateToken(42, "alice@example.com", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, _, err := tm.GenerateToken(7, "bob@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenWrongSecret(t *testing.T) {
	signer := NewTokenManager("right-secret")
	verifier := NewTokenManager("wrong-secret")

	token, _, err := signer.GenerateToken(7, "bob@example.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret")

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.ParseToken(token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestGenerateTokenZeroTTLExpires(t *testing.T) {
	tm := NewTokenManager("test-secret")

	token, exp, err := tm.GenerateToken(1, "alice@example.com", 0)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), exp, 5*time.Second)

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}
