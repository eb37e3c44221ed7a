package response

import (
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// baseResponse implements handler.Response with byte content and mutable
// headers. It provides the foundation for the constructors in this package.
type baseResponse struct {
	content []byte
	status  int
	header  http.Header
}

func newBaseResponse(content []byte, status int, contentType string) baseResponse {
	h := make(http.Header)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return baseResponse{content: content, status: status, header: h}
}

// StatusCode implements handler.Response.
func (r baseResponse) StatusCode() int { return r.status }

// Header implements handler.Response. The returned map is mutable, so
// decorators and after-middleware can attach headers to an existing value.
func (r baseResponse) Header() http.Header { return r.header }

// Body implements handler.Response.
func (r baseResponse) Body() []byte { return r.content }

// String responds 200 OK with plain text.
func String(content string) handler.Response {
	return newBaseResponse([]byte(content), http.StatusOK, "text/plain; charset=utf-8")
}

// StringWithStatus responds with plain text under the given status.
func StringWithStatus(content string, status int) handler.Response {
	return newBaseResponse([]byte(content), status, "text/plain; charset=utf-8")
}

// HTML responds 200 OK with an HTML body.
func HTML(content string) handler.Response {
	return newBaseResponse([]byte(content), http.StatusOK, "text/html; charset=utf-8")
}

// HTMLWithStatus responds with an HTML body under the given status.
func HTMLWithStatus(content string, status int) handler.Response {
	return newBaseResponse([]byte(content), status, "text/html; charset=utf-8")
}

// Bytes responds 200 OK with a raw body and caller-supplied content type.
func Bytes(content []byte, contentType string) handler.Response {
	return newBaseResponse(content, http.StatusOK, contentType)
}

// BytesWithStatus responds with a raw body, content type, and status.
func BytesWithStatus(content []byte, contentType string, status int) handler.Response {
	return newBaseResponse(content, status, contentType)
}

// NoContent responds 204 with nothing else.
func NoContent() handler.Response {
	return newBaseResponse(nil, http.StatusNoContent, "")
}

// Status responds with a bare status code and empty body.
func Status(code int) handler.Response {
	return newBaseResponse(nil, code, "")
}

// Empty creates the neutral response a pipeline starts from: 200 OK,
// no extra headers, no body.
func Empty() handler.Response {
	return newBaseResponse(nil, http.StatusOK, "")
}
