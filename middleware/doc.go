// Package middleware provides before- and after-handlers for the routekit
// router: request ID generation, client IP resolution, request logging,
// Prometheus metrics, and security headers.
//
// # Model
//
// Handlers in this package are plain routekit handlers registered on the
// router's before and after tables rather than wrappers around other
// handlers. Before-handlers run in registration order ahead of the matched
// route and typically enrich the context or decorate response headers.
// After-handlers run once the main route has produced a response and see its
// final status and headers. Requests without a matching main route skip the
// after table entirely.
//
//	r := router.New[*router.Context]()
//
//	r.Before(router.AllMethods, "/.*", middleware.RequestID[*router.Context]())
//	logBefore, logAfter := middleware.LoggingWithLogger[*router.Context](log)
//	r.Before(router.AllMethods, "/.*", logBefore)
//	r.After(router.AllMethods, "/.*", logAfter)
//
// # Pairs
//
// Logging and Metrics need both phases: the before-handler records the start
// time in the context, the after-handler observes status and latency. Both
// halves share configuration, so the constructors return the pair together:
//
//	mBefore, mAfter := middleware.MetricsWithConfig[*router.Context](middleware.MetricsConfig{
//		Registry: registry,
//	})
//	r.Before(router.AllMethods, "/.*", mBefore)
//	r.After(router.AllMethods, "/.*", mAfter)
//
// # Scoping
//
// Before- and after-handlers match patterns the same way routes do, so a
// handler can be limited to part of the URL space:
//
//	r.Before("GET|POST", "/admin/.*", middleware.SecurityHeadersWithConfig[*router.Context](middleware.StrictSecurity))
//
// # Context Values
//
// Enriching handlers publish what they resolve through accessor functions:
//
//	if id, ok := middleware.GetRequestID(ctx); ok {
//		log.Info("handling", "request_id", id)
//	}
//	if ip, ok := middleware.GetClientIP(ctx); ok {
//		log.Info("handling", "client_ip", ip)
//	}
package middleware
