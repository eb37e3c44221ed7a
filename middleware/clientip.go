package middleware

import (
	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/pkg/clientip"
)

// clientIPContextKey is used as a key for storing the client IP in request context.
type clientIPContextKey struct{}

// ClientIPConfig configures the client IP middleware.
type ClientIPConfig struct {
	// Skip suppresses IP resolution for requests where it returns true.
	Skip func(ctx handler.Context) bool
	// Extractor resolves the client IP from the request (default: clientip.GetIP)
	Extractor func(ctx handler.Context) string
}

// ClientIP creates a before-handler that resolves the real client IP,
// honoring CDN and proxy headers, and stores it in the context.
func ClientIP[C handler.Context]() handler.HandlerFunc[C] {
	return ClientIPWithConfig[C](ClientIPConfig{})
}

// ClientIPWithConfig creates a client IP before-handler with custom configuration.
func ClientIPWithConfig[C handler.Context](cfg ClientIPConfig) handler.HandlerFunc[C] {
	if cfg.Extractor == nil {
		cfg.Extractor = func(ctx handler.Context) string {
			return clientip.GetIP(ctx.Request())
		}
	}

	return func(ctx C, res handler.Response) handler.Response {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return res
		}

		ctx.SetValue(clientIPContextKey{}, cfg.Extractor(ctx))
		return res
	}
}

// GetClientIP retrieves the resolved client IP from the request context.
// Returns the IP and a boolean indicating whether it was resolved.
func GetClientIP(ctx handler.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok
}
