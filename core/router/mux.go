package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"sort"

	"github.com/dmitrymomot/routekit/core/handler"
)

// routeEntry is one registered (pattern, handler) pair with its compiled
// matcher. Entries are immutable once registered.
type routeEntry[C handler.Context] struct {
	pattern string
	matcher *patternMatcher
	handler handler.HandlerFunc[C]
}

// routeTable keys ordered entry sequences by HTTP method token. Insertion
// order is significant: main routes dispatch to the first match, middleware
// tables run every match in order.
type routeTable[C handler.Context] map[string][]routeEntry[C]

func (t routeTable[C]) add(method string, e routeEntry[C]) {
	t[method] = append(t[method], e)
}

// mux is the private implementation of Router. A mux produced by Mount is a
// group view: it shares the root's tables, registry, and configuration and
// carries only its own registration prefix.
type mux[C handler.Context] struct {
	root *mux[C]
	base string

	before    routeTable[C]
	routes    routeTable[C]
	after     routeTable[C]
	fallbacks []routeEntry[C]

	registry     *Registry[C]
	namespace    string
	basePath     string
	emitter      Emitter
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
}

// newMux creates a new root router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		before:       make(routeTable[C]),
		routes:       make(routeTable[C]),
		after:        make(routeTable[C]),
		registry:     newRegistry[C](),
		emitter:      EmitterFunc(defaultEmitter),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // silent until WithLogger
	}
	m.root = m

	for _, opt := range opts {
		opt(m)
	}

	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			// Only the default *Context type works without a factory.
			// Custom context types must provide one.
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(NewContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	return m
}

// stepResult reports how a single handler invocation left the pipeline.
type stepResult int

const (
	stepNext    stepResult = iota // continue with the returned response
	stepEmitted                   // response emitted early (redirect)
	stepFailed                    // contract violation, error handler took over
)

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.Run(w, r)
}

// Run executes the request pipeline: every matching before entry, the first
// matching main route, then either the after entries or the fallback chain,
// and finally a single emission. It reports whether a main route handled the
// request.
func (m *mux[C]) Run(w http.ResponseWriter, r *http.Request) (handled bool) {
	root := m.root
	ww := newResponseWriter(w)
	ctx := root.newContext(ww, r)

	// Recover from panics to prevent server crashes.
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				// Can't send an error response anymore, just log the panic.
				root.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
			} else {
				root.errorHandler(ctx, panicErr)
			}
		}
	}()

	method, suppressBody := effectiveMethod(r)
	path := root.currentPath(r)

	res := handler.Response(newPipelineResponse(http.StatusOK))

	// step invokes one entry, threading the response value through.
	step := func(e routeEntry[C], params []handler.Param) stepResult {
		ctx.SetParams(params)
		next := e.handler(ctx, res)
		if next == nil {
			root.errorHandler(ctx, fmt.Errorf("%w: route '%s'", ErrNilResponse, e.pattern))
			return stepFailed
		}
		res = next
		if _, ok := next.(handler.Redirector); ok {
			root.emit(ctx, ww, r, next, suppressBody)
			return stepEmitted
		}
		return stepNext
	}

	// BEFORE: every matching entry runs, in registration order.
	for _, e := range root.before[method] {
		if params, ok := e.matcher.match(path); ok {
			if step(e, params) != stepNext {
				return false
			}
		}
	}

	// MAIN: the first matching entry wins, scanning stops.
	for _, e := range root.routes[method] {
		params, ok := e.matcher.match(path)
		if !ok {
			continue
		}
		switch step(e, params) {
		case stepEmitted:
			return true
		case stepFailed:
			return false
		}
		handled = true
		break
	}

	if handled {
		// AFTER: same all-matches semantics as BEFORE.
		for _, e := range root.after[method] {
			if params, ok := e.matcher.match(path); ok {
				if step(e, params) != stepNext {
					return true
				}
			}
		}
	} else {
		// Fallbacks run against a fresh response; whatever the before chain
		// produced is discarded.
		res = newPipelineResponse(http.StatusOK)
		matched := 0
		for _, e := range root.fallbacks {
			params, ok := e.matcher.match(path)
			if !ok {
				continue
			}
			matched++
			if step(e, params) != stepNext {
				return false
			}
		}
		if matched == 0 {
			if e, ok := root.catchAll(); ok {
				if step(e, nil) != stepNext {
					return false
				}
			} else {
				res = newPipelineResponse(http.StatusNotFound)
			}
		}
	}

	root.emit(ctx, ww, r, res, suppressBody)
	return handled
}

// emit writes the response unless a handler already wrote to the transport
// directly.
func (m *mux[C]) emit(ctx C, ww *responseWriter, r *http.Request, res handler.Response, suppressBody bool) {
	if ww.Written() {
		return
	}
	if err := m.emitter.Emit(ww, r, res, suppressBody); err != nil {
		m.errorHandler(ctx, err)
	}
}

// catchAll returns the fallback registered under the bare root, if any.
func (m *mux[C]) catchAll() (routeEntry[C], bool) {
	for _, e := range m.fallbacks {
		if e.pattern == "/" {
			return e, true
		}
	}
	return routeEntry[C]{}, false
}

// Get registers a main route for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.Match(http.MethodGet, pattern, h)
}

// Post registers a main route for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.Match(http.MethodPost, pattern, h)
}

// Put registers a main route for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.Match(http.MethodPut, pattern, h)
}

// Patch registers a main route for PATCH requests.
func (m *mux[C]) Patch(pattern string, h handler.HandlerFunc[C]) {
	m.Match(http.MethodPatch, pattern, h)
}

// Delete registers a main route for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.Match(http.MethodDelete, pattern, h)
}

// Options registers a main route for OPTIONS requests.
func (m *mux[C]) Options(pattern string, h handler.HandlerFunc[C]) {
	m.Match(http.MethodOptions, pattern, h)
}

// All registers a main route for the full standard method set.
func (m *mux[C]) All(pattern string, h handler.HandlerFunc[C]) {
	m.Match(AllMethods, pattern, h)
}

// Match registers a main route for each method in the '|'-delimited list.
func (m *mux[C]) Match(methods, pattern string, h handler.HandlerFunc[C]) {
	m.register(m.root.routes, methods, pattern, h)
}

// Before registers pre-middleware. Every matching entry runs per request,
// ahead of the main route.
func (m *mux[C]) Before(methods, pattern string, h handler.HandlerFunc[C]) {
	m.register(m.root.before, methods, pattern, h)
}

// After registers post-middleware. Entries run only when a main route
// matched.
func (m *mux[C]) After(methods, pattern string, h handler.HandlerFunc[C]) {
	m.register(m.root.after, methods, pattern, h)
}

// NotFound registers a fallback. Every matching fallback runs when no main
// route matched; the entry registered under "/" doubles as the catch-all.
// Registering a pattern again replaces its handler.
func (m *mux[C]) NotFound(pattern string, h handler.HandlerFunc[C]) {
	e := m.entry(pattern, h)
	root := m.root
	for i := range root.fallbacks {
		if root.fallbacks[i].pattern == e.pattern {
			root.fallbacks[i] = e
			return
		}
	}
	root.fallbacks = append(root.fallbacks, e)
}

// Mount calls fn with a group registrar whose patterns carry the composed
// prefix. Groups share the root's tables, registry, and configuration, so
// routes registered inside fn land in the same dispatch pipeline.
func (m *mux[C]) Mount(prefix string, fn func(r Router[C])) {
	if fn == nil {
		panic(fmt.Errorf("%w: mount '%s'", ErrNilMountFunc, prefix))
	}
	fn(&mux[C]{root: m.root, base: joinPattern(m.base, prefix)})
}

// Handlers returns the symbolic handler registry.
func (m *mux[C]) Handlers() *Registry[C] {
	return m.root.registry
}

// Named resolves a symbolic handler reference immediately. Unknown
// references panic: a route must never silently lose its handler.
func (m *mux[C]) Named(ref string) handler.HandlerFunc[C] {
	h, err := m.root.registry.Resolve(ref, m.root.namespace)
	if err != nil {
		panic(err)
	}
	return h
}

// SetNamespace sets the prefix applied to "Controller@method" lookups.
func (m *mux[C]) SetNamespace(ns string) {
	m.root.namespace = ns
}

// SetBasePath overrides per-request base path detection.
func (m *mux[C]) SetBasePath(base string) {
	m.root.basePath = normalizeBasePath(base)
}

// Routes returns all registered main routes, sorted by pattern then method.
func (m *mux[C]) Routes() []Route {
	root := m.root
	var routes []Route
	for method, entries := range root.routes {
		for _, e := range entries {
			routes = append(routes, Route{Method: method, Pattern: e.pattern})
		}
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Pattern != routes[j].Pattern {
			return routes[i].Pattern < routes[j].Pattern
		}
		return routes[i].Method < routes[j].Method
	})
	return routes
}

// entry builds a route entry with the group prefix applied and the pattern
// compiled. Compilation failures panic during registration.
func (m *mux[C]) entry(pattern string, h handler.HandlerFunc[C]) routeEntry[C] {
	if h == nil {
		panic(fmt.Errorf("%w: route '%s'", ErrNilHandler, pattern))
	}
	full := joinPattern(m.base, pattern)
	matcher, err := compilePattern(full)
	if err != nil {
		panic(err)
	}
	return routeEntry[C]{pattern: full, matcher: matcher, handler: h}
}

// register appends one entry per method token to the given table.
func (m *mux[C]) register(t routeTable[C], methods, pattern string, h handler.HandlerFunc[C]) {
	e := m.entry(pattern, h)
	for _, method := range splitMethods(methods) {
		t.add(method, e)
	}
}

// pipelineResponse is the response value a pipeline stage starts from:
// a status, mutable headers, and no body.
type pipelineResponse struct {
	status int
	header http.Header
}

func newPipelineResponse(status int) pipelineResponse {
	return pipelineResponse{status: status, header: make(http.Header)}
}

func (p pipelineResponse) StatusCode() int     { return p.status }
func (p pipelineResponse) Header() http.Header { return p.header }
func (p pipelineResponse) Body() []byte        { return nil }
