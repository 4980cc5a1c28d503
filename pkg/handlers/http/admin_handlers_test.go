package http

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/ContentGuard/mocks"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/cache"
	"github.com/NeuralTrust/ContentGuard/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, app *fiber.App, method, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHealthHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/health", NewHealthHandler().Handle)

	status, body := doRequest(t, app, "GET", "/health")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, map[string]interface{}{"status": "healthy"}, body)
}

func TestReadyHandler(t *testing.T) {
	t.Run("redis reachable", func(t *testing.T) {
		cacheClient := mocks.NewCacheClient(t)
		cacheClient.EXPECT().Ping(mock.Anything).Return(nil)
		app := fiber.New()
		app.Get("/ready", NewReadyHandler(newTestLogger(), cacheClient).Handle)

		status, body := doRequest(t, app, "GET", "/ready")

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, "ready", body["status"])
	})

	t.Run("redis unreachable", func(t *testing.T) {
		cacheClient := mocks.NewCacheClient(t)
		cacheClient.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused"))
		app := fiber.New()
		app.Get("/ready", NewReadyHandler(newTestLogger(), cacheClient).Handle)

		status, body := doRequest(t, app, "GET", "/ready")

		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		assert.Equal(t, "unavailable", body["status"])
	})
}

func TestGetVersionHandler(t *testing.T) {
	app := fiber.New()
	app.Get("/version", NewGetVersionHandler(newTestLogger()).Handle)

	status, body := doRequest(t, app, "GET", "/version")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, version.AppName, body["app_name"])
	assert.Equal(t, version.Version, body["version"])
}

func TestInvalidateCacheHandler(t *testing.T) {
	t.Run("deletes classification entries", func(t *testing.T) {
		cacheClient := mocks.NewCacheClient(t)
		cacheClient.EXPECT().DeleteByPattern(mock.Anything, cache.TextKeyPattern).Return(int64(7), nil)
		app := fiber.New()
		app.Delete("/api/v1/cache", NewInvalidateCacheHandler(newTestLogger(), cacheClient).Handle)

		status, body := doRequest(t, app, "DELETE", "/api/v1/cache")

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, float64(7), body["deleted"])
	})

	t.Run("redis failure", func(t *testing.T) {
		cacheClient := mocks.NewCacheClient(t)
		cacheClient.EXPECT().DeleteByPattern(mock.Anything, cache.TextKeyPattern).Return(0, errors.New("READONLY"))
		app := fiber.New()
		app.Delete("/api/v1/cache", NewInvalidateCacheHandler(newTestLogger(), cacheClient).Handle)

		status, body := doRequest(t, app, "DELETE", "/api/v1/cache")

		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, "Failed to invalidate cache", body["error"])
	})
}
