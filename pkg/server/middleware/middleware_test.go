package middleware

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/common"
	"github.com/NeuralTrust/ContentGuard/pkg/config"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/jwt"
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	infraWebsocket "github.com/NeuralTrust/ContentGuard/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func okHandler(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func TestAdminAuthMiddleware(t *testing.T) {
	manager := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "test-secret"})
	token, err := manager.CreateToken(time.Hour)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(NewAdminAuthMiddleware(newTestLogger(), manager).Middleware())
	app.Delete("/api/v1/cache", okHandler)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"Valid token", "Bearer " + token, fiber.StatusOK},
		{"Missing header", "", fiber.StatusUnauthorized},
		{"Wrong scheme", "Basic " + token, fiber.StatusUnauthorized},
		{"Empty token", "Bearer ", fiber.StatusUnauthorized},
		{"Tampered token", "Bearer " + token + "x", fiber.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("DELETE", "/api/v1/cache", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	app := fiber.New()
	app.Use(NewRequestIDMiddleware(newTestLogger()).Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		seen = common.RequestIDFromContext(c.UserContext())
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(common.RequestIDHeader, "req-123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", resp.Header.Get(common.RequestIDHeader))
	assert.Equal(t, "req-123", seen)

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set(common.RequestIDHeader, strings.Repeat("a", maxRequestIDLength+1))
	resp, err = app.Test(req)
	require.NoError(t, err)
	generated := resp.Header.Get(common.RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, seen)
}

func TestPanicRecoverMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(NewPanicRecoverMiddleware(newTestLogger()).Middleware())
	app.Get("/", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal server error"}`, string(body))
}

func TestMetricsMiddleware(t *testing.T) {
	recorder := prometheus.NewRecorder(prometheus.Config{})
	app := fiber.New()
	app.Use(NewMetricsMiddleware(newTestLogger(), recorder).Middleware())
	app.Post("/classify", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No text provided"})
	})

	_, err := app.Test(httptest.NewRequest("POST", "/classify", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/nowhere", nil))
	require.NoError(t, err)

	families, err := recorder.Registry().Gather()
	require.NoError(t, err)
	labels := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "contentguard_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			key := ""
			for _, l := range m.GetLabel() {
				key += l.GetName() + "=" + l.GetValue() + ","
			}
			labels[key] = m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, labels["method=POST,route=/classify,status=400,"])
	assert.Equal(t, 1.0, labels["method=GET,route=unmatched,status=404,"])
}

func TestWebsocketMiddleware(t *testing.T) {
	semaphore := infraWebsocket.NewSemaphore(1)
	app := fiber.New()
	app.Get("/ws/classify", NewWebsocketMiddleware(newTestLogger(), semaphore).Middleware(), okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/ws/classify", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)

	req := httptest.NewRequest("GET", "/ws/classify", nil)
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")

	require.True(t, semaphore.Acquire())
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
}

func TestWebsocketMiddleware_FailedHandshakeReleasesSlot(t *testing.T) {
	semaphore := infraWebsocket.NewSemaphore(1)
	app := fiber.New()
	app.Get("/ws/classify",
		NewWebsocketMiddleware(newTestLogger(), semaphore).Middleware(),
		websocket.New(func(c *websocket.Conn) {
			t.Error("handler must not run without a completed handshake")
		}),
	)

	// No Sec-WebSocket-Key, so the upgrader rejects the request.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/ws/classify", nil)
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		req.Header.Set("Sec-WebSocket-Version", "13")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
		assert.Equal(t, 0, semaphore.GetCurrentConnections())
	}
}

func TestAccessLogMiddleware_PassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestIDMiddleware(newTestLogger()).Middleware())
	app.Use(NewAccessLogMiddleware(newTestLogger()).Middleware())
	app.Get("/health", okHandler)

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/121.0")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

type headerMiddleware struct {
	value string
}

func (m headerMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Append("X-Chain", m.value)
		return c.Next()
	}
}

func TestTransport_With(t *testing.T) {
	base := NewTransport(headerMiddleware{"base"})
	extended := base.With(headerMiddleware{"extra"})

	assert.Len(t, base.Middlewares, 1)
	assert.Len(t, extended.Middlewares, 2)

	app := fiber.New()
	app.Use(extended.GetMiddlewares()...)
	app.Get("/", okHandler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "base, extra", resp.Header.Get("X-Chain"))
}
