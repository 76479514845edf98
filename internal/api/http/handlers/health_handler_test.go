package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-account-service/internal/api/http/handlers"
	"github.com/spec-kit/user-account-service/internal/persistence"
)

func TestHealthLive(t *testing.T) {
	handler := handlers.NewHealthHandler("user-account-service", "test", nil, nil)

	app := fiber.New()
	app.Get("/health/live", handler.Live)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "alive", body["status"])
	assert.Equal(t, "user-account-service", body["service"])
}

func TestHealthReadyReportsDependencies(t *testing.T) {
	mr := miniredis.RunT(t)
	redisWrapper := &persistence.Redis{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(redisWrapper.Close)

	// No postgres pool configured: readiness must fail and name the
	// unavailable dependency while still reporting redis as healthy.
	handler := handlers.NewHealthHandler("user-account-service", "test", &persistence.Postgres{}, redisWrapper)

	app := fiber.New()
	app.Get("/health/ready", handler.Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "failed", body.Status)
	assert.Equal(t, "ok", body.Dependencies["redis"])
	assert.NotEqual(t, "ok", body.Dependencies["postgres"])
}

func TestHealthReadyRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	redisWrapper := &persistence.Redis{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(redisWrapper.Close)
	mr.Close()

	handler := handlers.NewHealthHandler("user-account-service", "test", &persistence.Postgres{}, redisWrapper)

	app := fiber.New()
	app.Get("/health/ready", handler.Ready)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
