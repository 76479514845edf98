package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "user-account-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 720, cfg.Auth.RegisterTokenTTLHours)
	assert.Equal(t, 24, cfg.Auth.LoginTokenTTLHours)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 720*time.Hour, cfg.Auth.RegisterTokenTTL())
	assert.Equal(t, 24*time.Hour, cfg.Auth.LoginTokenTTL())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestTokenTTLNonPositiveFallsBack(t *testing.T) {
	assert.Equal(t, 720*time.Hour, AuthConfig{}.RegisterTokenTTL())
	assert.Equal(t, 24*time.Hour, AuthConfig{}.LoginTokenTTL())
	assert.Equal(t, 24*time.Hour, AuthConfig{LoginTokenTTLHours: -1}.LoginTokenTTL())
}

func TestLoadRequiresSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AUTH_JWT_SECRET")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	t.Setenv("AUTH_LOGIN_TOKEN_TTL_HOURS", "48")
	t.Setenv("APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 48*time.Hour, cfg.Auth.LoginTokenTTL())
	assert.Equal(t, "9090", cfg.App.Port)
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}
