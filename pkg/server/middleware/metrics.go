package middleware

import (
	"github.com/NeuralTrust/ContentGuard/pkg/infra/prometheus"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const unmatchedRoute = "unmatched"

type metricsMiddleware struct {
	logger   *logrus.Logger
	recorder *prometheus.Recorder
}

func NewMetricsMiddleware(logger *logrus.Logger, recorder *prometheus.Recorder) Middleware {
	return &metricsMiddleware{
		logger:   logger,
		recorder: recorder,
	}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		if fiberErr, ok := err.(*fiber.Error); ok {
			status = fiberErr.Code
		}

		// Route templates keep label cardinality bounded.
		route := unmatchedRoute
		if r := c.Route(); r != nil && r.Path != "" && r.Path != "/" {
			route = r.Path
		}
		m.recorder.ObserveHTTPRequest(c.Method(), route, status)
		return err
	}
}
