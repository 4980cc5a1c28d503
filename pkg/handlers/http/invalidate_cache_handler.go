package http

import (
	"github.com/NeuralTrust/ContentGuard/pkg/infra/cache"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type invalidateCacheHandler struct {
	logger *logrus.Logger
	cache  cache.Client
}

func NewInvalidateCacheHandler(
	logger *logrus.Logger,
	cache cache.Client,
) Handler {
	return &invalidateCacheHandler{
		logger: logger,
		cache:  cache,
	}
}

// Handle @Summary Invalidate cached classifications
// @Description Removes every cached classification result. Other keys in the Redis database are left alone.
// @Tags Cache
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Number of removed entries"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 500 {object} map[string]interface{} "Failed to invalidate cache"
// @Router /api/v1/cache [delete]
func (h *invalidateCacheHandler) Handle(c *fiber.Ctx) error {
	h.logger.Info("invalidating classification cache")

	deleted, err := h.cache.DeleteByPattern(c.UserContext(), cache.TextKeyPattern)
	if err != nil {
		h.logger.WithError(err).Error("failed to invalidate cache")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to invalidate cache",
		})
	}

	h.logger.WithField("deleted", deleted).Info("cache invalidated successfully")
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Cache invalidated successfully",
		"deleted": deleted,
	})
}
