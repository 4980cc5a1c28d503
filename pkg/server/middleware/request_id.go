package middleware

import (
	"github.com/NeuralTrust/ContentGuard/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const maxRequestIDLength = 128

type requestIDMiddleware struct {
	logger *logrus.Logger
}

// NewRequestIDMiddleware propagates X-Request-Id, generating one when the
// client did not send a usable value. The id is echoed on the response and
// stored in both the fiber locals and the user context.
func NewRequestIDMiddleware(logger *logrus.Logger) Middleware {
	return &requestIDMiddleware{logger: logger}
}

func (m *requestIDMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(common.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.New().String()
		}

		c.Locals(common.RequestIDLocalsKey, id)
		c.Set(common.RequestIDHeader, id)
		c.SetUserContext(common.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}
