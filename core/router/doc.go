// Package router implements a pattern-dispatch HTTP router with a staged
// request pipeline: before-middleware, one main route, after-middleware or
// fallbacks, and a single buffered emission.
//
// # Routing Model
//
// Routes live in three independent tables keyed by HTTP method: before,
// main, and after. Main routes are exclusive per request: the first entry
// whose pattern matches, in registration order, wins. Before and after
// entries are middleware: every matching entry runs, in registration order.
// After entries run only when a main route matched; otherwise the fallback
// chain runs instead.
//
//	r := router.New[*router.Context]()
//
//	r.Before("GET|POST", "/.*", auth)
//	r.Get("/users/{id}", showUser)
//	r.After("GET", "/users/.*", audit)
//	r.NotFound("/", catchAll)
//
// Patterns use /{name} placeholders captured positionally; the text between
// the braces is not retained. Everything outside placeholders is passed to
// the regular expression engine verbatim, so patterns may embed raw
// fragments such as /movies/(\d+) or optional groups.
//
// # Response Pipeline
//
// Handlers receive the current response value and return the next one.
// Nothing is written to the transport until the pipeline finishes; the
// final value is emitted exactly once through the router's Emitter. A
// handler returning a redirect response short-circuits the pipeline, and a
// handler returning nil is a contract violation routed to the error handler.
//
// HEAD requests match GET routes; the emitter receives a suppress-body flag
// instead of the response being buffered and discarded. POST requests may
// carry an X-HTTP-Method-Override header with PUT, DELETE, or PATCH to
// dispatch under that method.
//
// # Groups and Symbolic Handlers
//
// Mount creates route groups from a composed prefix:
//
//	r.Mount("/api", func(api router.Router[*router.Context]) {
//		api.Get("/users", listUsers) // effective pattern /api/users
//	})
//
// Handlers can also be registered by name and referenced with the
// "Controller@method" form. References resolve when the route is registered,
// never during dispatch, and unknown references panic:
//
//	r.Handlers().Register("UserController@show", showUser)
//	r.Get("/users/{id}", r.Named("UserController@show"))
//
// # Custom Contexts
//
// Like the rest of the toolkit, the router is generic over the request
// context type. The default *router.Context works out of the box; custom
// types supply a factory via WithContextFactory.
package router
