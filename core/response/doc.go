// Package response provides buffered HTTP response values for use with the
// routekit router: plain text, HTML, JSON, raw bytes, redirects, structured
// errors, and an adapter for standard http.Handler implementations.
//
// Every constructor returns a handler.Response value carrying status,
// headers, and body. Nothing touches the transport until the router's
// emitter writes the final pipeline value, so responses can be decorated,
// replaced, or inspected by after-middleware before emission.
//
// # Constructors
//
//	import "github.com/dmitrymomot/routekit/core/response"
//
//	func getUser(ctx *router.Context, res handler.Response) handler.Response {
//		account := Account{ID: 7, Plan: "pro"}
//		return response.JSON(account)
//	}
//
//	func home(ctx *router.Context, res handler.Response) handler.Response {
//		return response.HTML("<h1>Welcome!</h1>")
//	}
//
//	func legacy(ctx *router.Context, res handler.Response) handler.Response {
//		return response.RedirectPermanent("/new-location")
//	}
//
// Redirect values implement handler.Redirector, which the router emits
// immediately, skipping the remaining pipeline stages.
//
// # Decorating Responses
//
// Response headers are mutable, so decorators modify a value in place and
// hand it back:
//
//	res := response.JSON(data)
//	res = response.WithHeaders(res, map[string]string{"X-Request-ID": id})
//	res = response.WithCache(res, 5*time.Minute)
//	return res
//
// # Structured Errors
//
// HTTPError pairs a status code with a machine-readable error code and
// optional details. Predefined values cover the common statuses:
//
//	return response.JSONError(response.ErrNotFound.WithMessage("no such user"))
//
// ErrorHandler and JSONErrorHandler plug into router.WithErrorHandler and
// map any error to a response, honoring HTTPError and StatusCode()
// implementations.
//
// # Standard Handlers
//
// Wrap buffers the output of any http.Handler into a response value:
//
//	r.Get("/metrics", response.Wrap[*router.Context](promhttp.Handler()))
//	r.Get("/static/.*", response.Wrap[*router.Context](http.FileServer(http.Dir("public"))))
//
// Streaming handlers (server-sent events, websockets, large file transfers)
// do not fit the buffered model; serve those outside the router.
package response
