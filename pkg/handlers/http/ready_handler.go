package http

import (
	"context"
	"time"

	"github.com/NeuralTrust/ContentGuard/pkg/infra/cache"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const readyPingTimeout = 2 * time.Second

type readyHandler struct {
	logger *logrus.Logger
	cache  cache.Client
}

func NewReadyHandler(logger *logrus.Logger, cache cache.Client) Handler {
	return &readyHandler{
		logger: logger,
		cache:  cache,
	}
}

// Handle @Summary Readiness probe
// @Description Pings Redis and reports whether the service can take traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} map[string]interface{} "Redis is unreachable"
// @Router /ready [get]
func (h *readyHandler) Handle(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), readyPingTimeout)
	defer cancel()

	if err := h.cache.Ping(ctx); err != nil {
		h.logger.WithError(err).Warn("readiness check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unavailable",
			"error":  "Cache unreachable",
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
