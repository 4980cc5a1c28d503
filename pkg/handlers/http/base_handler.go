package http

import (
	"errors"
	"unicode"
	"unicode/utf8"

	domain "github.com/NeuralTrust/ContentGuard/pkg/domain/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	cacheStatusHeader = "X-Cache"
	cacheStatusHit    = "HIT"
	cacheStatusMiss   = "MISS"
)

const (
	msgNoTextProvided     = "No text provided"
	msgInvalidRequestBody = "Invalid request body"
	msgInternalError      = "Internal server error"
)

// ErrorResponse maps a pipeline error onto a status code and the message
// returned to the client.
func ErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNoText):
		return fiber.StatusBadRequest, msgNoTextProvided
	case errors.Is(err, domain.ErrInvalidRequestBody):
		return fiber.StatusBadRequest, msgInvalidRequestBody
	case domain.IsValidationError(err):
		return fiber.StatusBadRequest, capitalize(err.Error())
	default:
		return fiber.StatusInternalServerError, msgInternalError
	}
}

func HandleErrorResponse(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	status, message := ErrorResponse(err)
	if status >= fiber.StatusInternalServerError {
		logger.WithError(err).WithField("path", c.Path()).Error("failed to process classification request")
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func cacheStatus(hit bool) string {
	if hit {
		return cacheStatusHit
	}
	return cacheStatusMiss
}
