package router

import (
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Context is the default request context. It delegates context.Context
// methods to the request's context, extended with values stored via SetValue
// and the positional parameters of the currently matched pattern.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	params []handler.Param

	mu     sync.RWMutex
	values map[any]any
}

// NewContext creates a default context for the given request.
// Custom context factories typically embed the result.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} { return c.r.Context().Done() }

// Err delegates to the request's context.
func (c *Context) Err() error { return c.r.Context().Err() }

// Value returns values stored via SetValue, falling back to the request's
// context.
func (c *Context) Value(key any) any {
	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return v
	}
	return c.r.Context().Value(key)
}

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request { return c.r }

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the i-th positional parameter of the matched pattern.
// Out-of-range indexes return an invalid Param.
func (c *Context) Param(i int) handler.Param {
	if i < 0 || i >= len(c.params) {
		return handler.Param{}
	}
	return c.params[i]
}

// Params returns all positional parameters in pattern order.
func (c *Context) Params() []handler.Param { return c.params }

// SetParams replaces the positional parameters. The router calls it before
// every handler invocation.
func (c *Context) SetParams(params []handler.Param) { c.params = params }

// SetValue stores a request-scoped value retrievable via Value.
func (c *Context) SetValue(key, val any) {
	c.mu.Lock()
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
	c.mu.Unlock()
}
