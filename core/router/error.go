package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

var (
	// Registration errors, raised as panics while routes are being set up.
	ErrInvalidPattern = errors.New("invalid route pattern")
	ErrInvalidMethod  = errors.New("invalid http method")
	ErrUnknownHandler = errors.New("unknown handler reference")
	ErrNilHandler     = errors.New("nil handler")
	ErrNilMountFunc   = errors.New("nil mount func")

	// Dispatch errors, routed to the router's error handler.
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilResponse      = errors.New("nil response")
)

// statusCode lets an error choose the status the default handler writes.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler writes the error as plain text, honoring a statusCode
// implementation and falling back to 500.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// A second write would corrupt the already-sent response.
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// PanicError allows external error handlers to detect and handle panics.
// When a panic is recovered by the router, it is wrapped in an error that
// implements this interface, providing access to the original panic value
// and stack trace.
type PanicError interface {
	error
	// Value is what was passed to panic.
	Value() any
	// Stack is the goroutine stack captured during recovery.
	Stack() []byte
}

// panicError is the private implementation of PanicError.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap exposes error panic values to errors.Is and errors.As.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
