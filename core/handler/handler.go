package handler

import "net/http"

// Response is a buffered HTTP response value: status code, headers, and body
// bytes. Handlers return the next response value instead of writing to the
// transport directly; the router emits the final value exactly once when the
// request pipeline finishes.
type Response interface {
	StatusCode() int
	Header() http.Header
	Body() []byte
}

// Redirector marks responses that short-circuit the request pipeline.
// When a handler returns a Redirector, the router emits it immediately and
// skips the remaining stages.
type Redirector interface {
	Response
	Location() string
}

// HandlerFunc is a type-safe request handler. It receives the response value
// produced by earlier pipeline stages and returns the value to carry forward.
// Returning nil is a contract violation routed to the router's error handler.
type HandlerFunc[C Context] func(ctx C, res Response) Response

// ErrorHandler receives pipeline failures: recovered panics, nil handler
// returns, emit errors. It writes to the transport directly, outside the
// response pipeline.
type ErrorHandler[C Context] func(ctx C, err error)
