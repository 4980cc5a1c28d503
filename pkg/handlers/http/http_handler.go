package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport interface {
	GetTransport() HandlerTransport
}

type HandlerTransportDTO struct {
	// Classification
	HealthHandler        Handler
	ReadyHandler         Handler
	ClassifyHandler      Handler
	ClassifyBatchHandler Handler

	// Admin
	GetVersionHandler      Handler
	InvalidateCacheHandler Handler
}

func (t *HandlerTransportDTO) GetTransport() HandlerTransport {
	return t
}
