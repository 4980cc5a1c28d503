package http

import (
	"bytes"

	appClassification "github.com/NeuralTrust/ContentGuard/pkg/app/classification"
	"github.com/NeuralTrust/ContentGuard/pkg/common"
	"github.com/NeuralTrust/ContentGuard/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type classifyBatchHandler struct {
	logger   *logrus.Logger
	pipeline appClassification.Pipeline
}

func NewClassifyBatchHandler(logger *logrus.Logger, pipeline appClassification.Pipeline) Handler {
	return &classifyBatchHandler{
		logger:   logger,
		pipeline: pipeline,
	}
}

// Handle @Summary Classify a batch of texts
// @Description Runs every text through the classification pipeline and returns the results in request order
// @Tags Classification
// @Accept json
// @Produce json
// @Param request body request.ClassifyBatchRequest true "Texts to classify"
// @Success 200 {object} map[string]interface{} "Results in request order"
// @Failure 400 {object} map[string]interface{} "Empty, oversized or invalid batch"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /classify/batch [post]
func (h *classifyBatchHandler) Handle(c *fiber.Ctx) error {
	req, err := request.ParseClassifyBatchRequest(c.Body())
	if err != nil {
		return HandleErrorResponse(c, h.logger, err)
	}

	ctx := common.WithSource(c.UserContext(), common.SourceBatch)
	outcomes, err := h.pipeline.ClassifyBatch(ctx, req.ToDomain())
	if err != nil {
		return HandleErrorResponse(c, h.logger, err)
	}

	// Results are spliced from the stored bytes so cached entries stay verbatim.
	var buf bytes.Buffer
	buf.WriteString(`{"results":[`)
	for i, outcome := range outcomes {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(outcome.Raw)
	}
	buf.WriteString(`]}`)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
