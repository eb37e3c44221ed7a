package response

import (
	"bytes"
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// recorder buffers everything an http.Handler writes so the output can be
// replayed as a response value.
type recorder struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func (rec *recorder) Header() http.Header { return rec.header }

func (rec *recorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	return rec.body.Write(b)
}

func (rec *recorder) WriteHeader(status int) {
	if rec.status == 0 {
		rec.status = status
	}
}

// recordedResponse replays a recorder as a handler.Response.
type recordedResponse struct {
	header http.Header
	body   []byte
	status int
}

func (r recordedResponse) StatusCode() int     { return r.status }
func (r recordedResponse) Header() http.Header { return r.header }
func (r recordedResponse) Body() []byte        { return r.body }

// Wrap adapts a standard http.Handler into a HandlerFunc by buffering its
// output into a response value. This lets stock handlers such as
// promhttp.Handler or http.FileServer participate in the response pipeline.
// The wrapped handler's output is fully buffered, so it is not suitable for
// streaming handlers.
func Wrap[C handler.Context](h http.Handler) handler.HandlerFunc[C] {
	return func(ctx C, _ handler.Response) handler.Response {
		rec := &recorder{header: make(http.Header)}
		h.ServeHTTP(rec, ctx.Request())
		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		return recordedResponse{header: rec.header, body: rec.body.Bytes(), status: status}
	}
}
