package router

import (
	handlers "github.com/NeuralTrust/ContentGuard/pkg/handlers/http"
	"github.com/NeuralTrust/ContentGuard/pkg/server/middleware"
	"github.com/gofiber/fiber/v2"
)

const (
	VersionPath = "/version"
	CachePath   = "/cache"
)

type adminRouter struct {
	middlewareTransport *middleware.Transport
	authMiddleware      middleware.Middleware
	handlerTransport    handlers.HandlerTransport
}

func NewAdminRouter(
	middlewareTransport *middleware.Transport,
	authMiddleware middleware.Middleware,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &adminRouter{
		middlewareTransport: middlewareTransport,
		authMiddleware:      authMiddleware,
		handlerTransport:    handlerTransport,
	}
}

func (r *adminRouter) BuildRoutes(router *fiber.App) error {
	handlerTransport, ok := r.handlerTransport.GetTransport().(*handlers.HandlerTransportDTO)
	if !ok {
		return ErrInvalidHandlerTransport
	}

	if middlewares := r.middlewareTransport.GetMiddlewares(); len(middlewares) > 0 {
		router.Use(middlewares...)
	}

	router.Get(HealthPath, handlerTransport.HealthHandler.Handle)
	router.Get(VersionPath, handlerTransport.GetVersionHandler.Handle)

	v1 := router.Group("/api/v1")
	{
		v1.Use(r.authMiddleware.Middleware())

		v1.Delete(CachePath, handlerTransport.InvalidateCacheHandler.Handle)
	}
	return nil
}
