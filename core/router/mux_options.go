package router

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Option adjusts a router as New constructs it.
type Option[C handler.Context] func(*mux[C])

// WithErrorHandler replaces the plain-text default error handler.
func WithErrorHandler[C handler.Context](h handler.ErrorHandler[C]) Option[C] {
	return func(m *mux[C]) {
		if h != nil {
			m.errorHandler = h
		}
	}
}

// WithContextFactory sets the factory that builds the per-request context.
// Routers with custom context types require one.
func WithContextFactory[C handler.Context](f func(http.ResponseWriter, *http.Request) C) Option[C] {
	return func(m *mux[C]) {
		m.newContext = f
	}
}

// WithLogger enables the router's internal logging, currently panics that
// occur after a response was already written.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(m *mux[C]) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithEmitter replaces the transport emitter.
func WithEmitter[C handler.Context](e Emitter) Option[C] {
	return func(m *mux[C]) {
		if e != nil {
			m.emitter = e
		}
	}
}

// WithBasePath fixes the base path instead of deriving it per request.
func WithBasePath[C handler.Context](base string) Option[C] {
	return func(m *mux[C]) {
		m.basePath = normalizeBasePath(base)
	}
}

// WithNamespace sets the prefix applied to "Controller@method" lookups.
func WithNamespace[C handler.Context](ns string) Option[C] {
	return func(m *mux[C]) {
		m.namespace = ns
	}
}
