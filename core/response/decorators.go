package response

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrymomot/routekit/core/handler"
)

// WithHeaders sets custom HTTP headers on a response value and returns it.
// Responses built by this package carry mutable headers; values with a nil
// header map are returned unchanged.
func WithHeaders(res handler.Response, headers map[string]string) handler.Response {
	if res == nil || len(headers) == 0 {
		return res
	}
	h := res.Header()
	if h == nil {
		return res
	}
	for k, v := range headers {
		h.Set(k, v)
	}
	return res
}

// WithCookie attaches an HTTP cookie to a response value and returns it.
func WithCookie(res handler.Response, cookie *http.Cookie) handler.Response {
	if res == nil || cookie == nil {
		return res
	}
	h := res.Header()
	if h == nil {
		return res
	}
	if v := cookie.String(); v != "" {
		h.Add("Set-Cookie", v)
	}
	return res
}

// WithCache stamps caching headers onto a response value and returns it.
// A positive maxAge produces Cache-Control and Expires for that duration;
// zero or negative produces the trio of no-cache headers.
func WithCache(res handler.Response, maxAge time.Duration) handler.Response {
	if res == nil {
		return res
	}
	h := res.Header()
	if h == nil {
		return res
	}
	if maxAge > 0 {
		seconds := int(maxAge.Seconds())
		h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", seconds))
		expires := time.Now().Add(maxAge)
		h.Set("Expires", expires.Format(http.TimeFormat))
	} else {
		h.Set("Cache-Control", "no-cache, no-store, must-revalidate")
		h.Set("Pragma", "no-cache")
		h.Set("Expires", "0")
	}
	return res
}
