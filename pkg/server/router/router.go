package router

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// HealthPath is served by both the API and the admin server.
const HealthPath = "/health"

var (
	ErrInvalidHandlerTransport = errors.New("invalid handler transport")
)

type ServerRouter interface {
	BuildRoutes(router *fiber.App) error
}
