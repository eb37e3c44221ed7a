// Package handler defines the request processing contracts shared by the
// routekit router and response packages: buffered response values, type-safe
// handlers with custom context support, and positional path parameters.
//
// # Contracts
//
// Three types define the processing model:
//
//	import "github.com/dmitrymomot/routekit/core/handler"
//
//	// Buffered response value produced by handlers
//	type Response interface {
//		StatusCode() int
//		Header() http.Header
//		Body() []byte
//	}
//
//	// Handler over context type C
//	type HandlerFunc[C Context] func(ctx C, res Response) Response
//
//	// Receiver for pipeline failures
//	type ErrorHandler[C Context] func(ctx C, err error)
//
// Handlers never write to the network themselves. Each handler receives the
// response value produced by the previous pipeline stage and returns the value
// to carry forward; the router emits the final value once, after the pipeline
// finishes. This is what lets before- and after-handlers decorate a response
// without coordinating header flushes.
//
// # Request Context
//
// Context extends Go's standard context.Context with
// HTTP-specific methods:
//
//	type Context interface {
//		context.Context                      // deadlines, cancellation, values
//		Request() *http.Request              // access to the HTTP request
//		ResponseWriter() http.ResponseWriter // access to the transport writer
//		Param(i int) Param                   // i-th positional path parameter
//		Params() []Param                     // all positional parameters
//		SetParams(params []Param)            // called by the router per invocation
//		SetValue(key, val any)               // store request-scoped values
//	}
//
// Path parameters are positional, not named: the pattern /user/{id}/post/{pid}
// produces two parameters in pattern order. A Param with Valid == false means
// the pattern's capture group did not engage for this request, which can
// happen when a pattern embeds an optional group.
//
// # Writing Handlers
//
//	func showUser(ctx *router.Context, res handler.Response) handler.Response {
//		id := ctx.Param(0)
//		if !id.Valid {
//			return response.Status(http.StatusBadRequest)
//		}
//		return response.JSON(map[string]string{"user_id": id.Value})
//	}
//
// # Custom Context Types
//
// Applications define their own context types to carry authenticated users,
// tenants, or anything else request-scoped:
//
//	type AppContext struct {
//		*router.Context
//		User *User
//	}
//
//	r := router.New(router.WithContextFactory(
//		func(w http.ResponseWriter, r *http.Request) *AppContext {
//			return &AppContext{Context: router.NewContext(w, r)}
//		},
//	))
//
//	r.Get("/me", func(ctx *AppContext, res handler.Response) handler.Response {
//		return response.JSON(ctx.User)
//	})
//
// The generic parameter keeps handler signatures honest: a router created for
// *AppContext only accepts handlers taking *AppContext.
package handler
