// Package routekit provides a pattern-dispatch HTTP routing toolkit built
// around buffered response values. Handlers return responses instead of
// writing to the transport, which lets ordered before/after middleware
// chains decorate a response without coordinating header flushes.
//
// # Packages
//
// Core building blocks:
//
//	core/router   - Pattern-dispatch HTTP router with before/after chains
//	core/handler  - Response contract, handler funcs, request context interface
//	core/response - Response value constructors (text, JSON, redirects, errors)
//	core/server   - HTTP server with graceful shutdown and TLS
//	core/logger   - Structured logging built on slog
//	core/config   - Typed environment variable loading
//
// Cross-cutting request concerns live in middleware (request ID, client IP,
// logging, metrics, security headers), and pkg/ holds standalone utilities
// usable without the router, currently pkg/clientip.
//
// # Request Lifecycle
//
// A request runs through four stages: every matching before entry, the
// first matching main route, then either the after entries (on a match) or
// the fallback chain (on none). Each stage threads a response value to the
// next; the final value is written to the transport exactly once. Panics
// anywhere in the pipeline are recovered and routed to the error handler.
//
// # Example
//
//	import (
//		"context"
//		"log"
//		"net/http"
//
//		"github.com/dmitrymomot/routekit/core/handler"
//		"github.com/dmitrymomot/routekit/core/response"
//		"github.com/dmitrymomot/routekit/core/router"
//		"github.com/dmitrymomot/routekit/core/server"
//		"github.com/dmitrymomot/routekit/middleware"
//	)
//
//	func main() {
//		r := router.New[*router.Context]()
//
//		// Middleware registers as before/after entries scoped by
//		// method list and pattern.
//		r.Before(router.AllMethods, "/.*", middleware.RequestID[*router.Context]())
//
//		logBefore, logAfter := middleware.Logging[*router.Context]()
//		r.Before(router.AllMethods, "/.*", logBefore)
//		r.After(router.AllMethods, "/.*", logAfter)
//
//		// Handlers receive the current response value and return the next.
//		r.Get("/", func(ctx *router.Context, res handler.Response) handler.Response {
//			return response.JSON(map[string]string{"status": "ok"})
//		})
//
//		// Path parameters are positional.
//		r.Get("/users/{id}", func(ctx *router.Context, res handler.Response) handler.Response {
//			id := ctx.Param(0)
//			if !id.Valid {
//				return response.JSONError(response.ErrBadRequest)
//			}
//			return response.JSON(map[string]string{"user_id": id.Value})
//		})
//
//		// Fallback for unmatched requests.
//		r.NotFound("/", func(ctx *router.Context, res handler.Response) handler.Response {
//			return response.JSONError(response.ErrNotFound)
//		})
//
//		if err := server.Run(context.Background(), ":8080", r); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Runnable programs live under examples/.
package routekit
