package router

import (
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Emitter writes a finished response value to the transport. The router
// invokes it exactly once per request: at pipeline end, or early when a
// handler returns a redirect. suppressBody is set for HEAD requests, which
// match GET routes but must not carry a body.
type Emitter interface {
	Emit(w http.ResponseWriter, r *http.Request, res handler.Response, suppressBody bool) error
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(w http.ResponseWriter, r *http.Request, res handler.Response, suppressBody bool) error

// Emit implements the Emitter interface.
func (f EmitterFunc) Emit(w http.ResponseWriter, r *http.Request, res handler.Response, suppressBody bool) error {
	return f(w, r, res, suppressBody)
}

// defaultEmitter copies the response headers onto the transport, writes the
// status line, and writes the body unless suppressed.
func defaultEmitter(w http.ResponseWriter, r *http.Request, res handler.Response, suppressBody bool) error {
	h := w.Header()
	for k, vv := range res.Header() {
		h[k] = vv
	}

	status := res.StatusCode()
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if suppressBody {
		return nil
	}
	if body := res.Body(); len(body) > 0 {
		if _, err := w.Write(body); err != nil {
			return err
		}
	}
	return nil
}
