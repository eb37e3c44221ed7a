package middleware

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/routekit/core/handler"
)

type requestIDContextKey struct{}

// RequestIDConfig controls how request IDs are produced and exposed.
type RequestIDConfig struct {
	// Skip suppresses ID assignment for requests where it returns true.
	Skip func(ctx handler.Context) bool
	// Generator mints new IDs. Defaults to UUID v4.
	Generator func() string
	// HeaderName carries the ID on the response. Defaults to "X-Request-ID".
	HeaderName string
	// UseExisting trusts an incoming HeaderName value instead of minting,
	// for deployments where an upstream proxy already assigns IDs.
	UseExisting bool
}

// RequestID creates a request ID before-handler with default configuration.
// It generates a new UUID for each request and includes it in both context and
// response headers. Register it with Router.Before.
func RequestID[C handler.Context]() handler.HandlerFunc[C] {
	return RequestIDWithConfig[C](RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID before-handler with custom
// configuration. The ID lands in the request context for GetRequestID and on
// the response via the configured header.
func RequestIDWithConfig[C handler.Context](cfg RequestIDConfig) handler.HandlerFunc[C] {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}

	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(ctx C, res handler.Response) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return res
		}

		var requestID string

		// Reuse the ID from the incoming request when configured.
		if cfg.UseExisting {
			if existingID := ctx.Request().Header.Get(cfg.HeaderName); existingID != "" {
				requestID = existingID
			}
		}

		if requestID == "" {
			requestID = cfg.Generator()
		}

		ctx.SetValue(requestIDContextKey{}, requestID)
		// Writer headers persist across response replacement by later handlers.
		ctx.ResponseWriter().Header().Set(cfg.HeaderName, requestID)

		return res
	}
}

// GetRequestID reads the ID the middleware stored on the context. The bool
// is false when the middleware never ran for this request.
func GetRequestID(ctx handler.Context) (string, bool) {
	id, ok := ctx.Value(requestIDContextKey{}).(string)
	return id, ok
}
