package router

import (
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Router is the main routing interface. Route patterns use /{name}
// placeholders whose values are captured positionally; the name text is
// documentation only. Where a methods argument appears it is a '|'-delimited
// list of HTTP method tokens, e.g. "GET|POST".
type Router[C handler.Context] interface {
	http.Handler
	Routes

	// Main routes. The first matching entry, in registration order, wins.
	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Patch(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])
	Options(pattern string, h handler.HandlerFunc[C])
	All(pattern string, h handler.HandlerFunc[C])
	Match(methods, pattern string, h handler.HandlerFunc[C])

	// Middleware routes. Every matching entry runs, in registration order.
	// After entries run only when a main route matched.
	Before(methods, pattern string, h handler.HandlerFunc[C])
	After(methods, pattern string, h handler.HandlerFunc[C])

	// NotFound registers a fallback checked when no main route matched.
	// The entry registered under "/" doubles as the default catch-all.
	NotFound(pattern string, h handler.HandlerFunc[C])

	// Mount calls fn with a registrar whose patterns carry the composed
	// prefix. Groups nest and hold no shared mutable scope, so no prefix
	// state leaks outside fn.
	Mount(prefix string, fn func(r Router[C]))

	// Symbolic handler references, resolved at registration time.
	Handlers() *Registry[C]
	Named(ref string) handler.HandlerFunc[C]
	SetNamespace(ns string)

	// SetBasePath overrides per-request base path detection.
	SetBasePath(base string)

	// Run executes the request pipeline and reports whether a main route
	// handled the request. ServeHTTP is Run with the result discarded.
	Run(w http.ResponseWriter, r *http.Request) bool
}

// Routes exposes the registered route table, for startup dumps and tests.
type Routes interface {
	Routes() []Route
}

// Route describes a single main route with its HTTP method and pattern.
type Route struct {
	Method  string
	Pattern string
}

// New builds a router for context type C. *router.Context needs no
// options; other context types must supply WithContextFactory.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
