package router

import (
	"time"

	_ "github.com/NeuralTrust/ContentGuard/docs"
	handlers "github.com/NeuralTrust/ContentGuard/pkg/handlers/http"
	wsHandlers "github.com/NeuralTrust/ContentGuard/pkg/handlers/websocket"
	"github.com/NeuralTrust/ContentGuard/pkg/server/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const (
	ReadyPath         = "/ready"
	ClassifyPath      = "/classify"
	ClassifyBatchPath = "/classify/batch"
	WebsocketPath     = "/ws/classify"
	DocsPath          = "/docs/*"
)

type apiRouter struct {
	middlewareTransport *middleware.Transport
	handlerTransport    handlers.HandlerTransport
	wsHandlerTransport  wsHandlers.HandlerTransport
	wsMiddleware        middleware.Middleware
}

func NewAPIRouter(
	middlewareTransport *middleware.Transport,
	handlerTransport handlers.HandlerTransport,
	wsHandlerTransport wsHandlers.HandlerTransport,
	wsMiddleware middleware.Middleware,
) ServerRouter {
	return &apiRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
		wsHandlerTransport:  wsHandlerTransport,
		wsMiddleware:        wsMiddleware,
	}
}

func (r *apiRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport, ok := r.handlerTransport.GetTransport().(*handlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	wsHandlerTransport, ok := r.wsHandlerTransport.GetTransport().(*wsHandlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	if middlewares := r.middlewareTransport.GetMiddlewares(); len(middlewares) > 0 {
		router.Use(middlewares...)
	}

	router.Get(HealthPath, handlerTransport.HealthHandler.Handle)
	router.Get(ReadyPath, handlerTransport.ReadyHandler.Handle)
	router.Post(ClassifyPath, handlerTransport.ClassifyHandler.Handle)
	router.Post(ClassifyBatchPath, handlerTransport.ClassifyBatchHandler.Handle)

	router.Get(WebsocketPath, r.wsMiddleware.Middleware(), websocket.New(
		wsHandlerTransport.ClassifyHandler.Handle,
		websocket.Config{
			HandshakeTimeout: 15 * time.Second,
			ReadBufferSize:   1024,
			WriteBufferSize:  1024,
		},
	))

	router.Get(DocsPath, swagger.HandlerDefault)

	return nil
}
