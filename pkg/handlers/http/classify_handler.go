package http

import (
	appClassification "github.com/NeuralTrust/ContentGuard/pkg/app/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type classifyHandler struct {
	logger   *logrus.Logger
	pipeline appClassification.Pipeline
}

func NewClassifyHandler(logger *logrus.Logger, pipeline appClassification.Pipeline) Handler {
	return &classifyHandler{
		logger:   logger,
		pipeline: pipeline,
	}
}

// Handle @Summary Classify text
// @Description Scores text against every content-safety category. Repeated texts are served from the cache.
// @Tags Classification
// @Accept json
// @Produce json
// @Param request body request.ClassifyRequest true "Text to classify"
// @Success 200 {object} map[string]interface{} "Category scores, echoed text and timestamp"
// @Failure 400 {object} map[string]interface{} "No text provided or invalid body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /classify [post]
func (h *classifyHandler) Handle(c *fiber.Ctx) error {
	req, err := request.ParseClassifyRequest(c.Body())
	if err != nil {
		return HandleErrorResponse(c, h.logger, err)
	}

	outcome, err := h.pipeline.Classify(c.UserContext(), req.ToDomain())
	if err != nil {
		return HandleErrorResponse(c, h.logger, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(cacheStatusHeader, cacheStatus(outcome.CacheHit))
	return c.Status(fiber.StatusOK).Send(outcome.Raw)
}
