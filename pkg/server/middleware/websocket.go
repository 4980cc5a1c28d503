package middleware

import (
	"github.com/NeuralTrust/ContentGuard/pkg/common"
	infra "github.com/NeuralTrust/ContentGuard/pkg/infra/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type websocketMiddleware struct {
	logger    *logrus.Logger
	semaphore *infra.Semaphore
}

// NewWebsocketMiddleware guards websocket routes: plain HTTP requests get 426
// and upgrades beyond the connection limit get 429. Once the upgrade succeeds
// the websocket handler owns the slot and releases it when the connection
// ends; a failed handshake releases it here.
func NewWebsocketMiddleware(logger *logrus.Logger, semaphore *infra.Semaphore) Middleware {
	return &websocketMiddleware{
		logger:    logger,
		semaphore: semaphore,
	}
}

func (m *websocketMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		if !m.semaphore.Acquire() {
			m.logger.WithField("connections", m.semaphore.GetCurrentConnections()).
				Warn("maximum websocket connections reached, rejecting connection")
			return fiber.ErrTooManyRequests
		}
		c.Locals(common.WebsocketSemaphoreLocalsKey, m.semaphore)
		if err := c.Next(); err != nil {
			m.semaphore.Release()
			return err
		}
		return nil
	}
}
