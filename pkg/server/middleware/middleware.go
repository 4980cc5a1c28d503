package middleware

import "github.com/gofiber/fiber/v2"

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport is an ordered middleware chain; the first entry runs outermost.
type Transport struct {
	Middlewares []Middleware
}

func NewTransport(middlewares ...Middleware) *Transport {
	return &Transport{
		Middlewares: middlewares,
	}
}

// With returns a new chain extending t. t itself is left unchanged so one
// base chain can be shared by several servers.
func (t *Transport) With(middlewares ...Middleware) *Transport {
	chain := make([]Middleware, 0, len(t.Middlewares)+len(middlewares))
	chain = append(chain, t.Middlewares...)
	chain = append(chain, middlewares...)
	return &Transport{Middlewares: chain}
}

// GetMiddlewares returns the handlers in the variadic form fiber's Use expects.
func (t *Transport) GetMiddlewares() []interface{} {
	handlers := make([]interface{}, 0, len(t.Middlewares))
	for _, m := range t.Middlewares {
		handlers = append(handlers, m.Middleware())
	}
	return handlers
}
