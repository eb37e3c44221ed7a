package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// statusCode picks up the HTTP status from errors that carry one.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError converts any error to an HTTPError.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}

	return baseErr.WithError(err)
}

// JSONError renders an HTTPError as its JSON response value, ready to return
// from a handler.
func JSONError(e HTTPError) handler.Response {
	return JSONWithStatus(e, e.Status)
}

// ErrorHandler is a router error handler that writes plain text errors.
// It maps HTTPError values and statusCode implementations to their status,
// defaulting to 500.
func ErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	writeError(ctx, httpErr.Status, "text/plain; charset=utf-8", []byte(httpErr.Error()))
}

// JSONErrorHandler is a router error handler that writes structured JSON
// errors, using the same status mapping as ErrorHandler.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	httpErr := convertToHTTPError(err)
	body, merr := json.Marshal(httpErr)
	if merr != nil {
		writeError(ctx, http.StatusInternalServerError, "text/plain; charset=utf-8", []byte(httpErr.Error()))
		return
	}
	writeError(ctx, httpErr.Status, "application/json; charset=utf-8", body)
}

// writeError writes directly to the transport: error handlers run outside
// the response pipeline. Double writes are guarded via the router's wrapped
// writer when present.
func writeError[C handler.Context](ctx C, status int, contentType string, body []byte) {
	w := ctx.ResponseWriter()
	if ww, ok := w.(interface{ Written() bool }); ok && ww.Written() {
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
