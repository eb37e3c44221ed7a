package response

import (
	"net/http"

	"github.com/dmitrymomot/routekit/core/handler"
)

// redirectResponse implements handler.Redirector. The router emits redirects
// immediately, short-circuiting the remaining pipeline stages.
type redirectResponse struct {
	url    string
	status int
	header http.Header
}

func newRedirect(url string, status int) redirectResponse {
	// Out-of-range codes fall back to 302 Found.
	if status < 300 || status >= 400 {
		status = http.StatusFound
	}
	h := make(http.Header)
	h.Set("Location", url)
	return redirectResponse{url: url, status: status, header: h}
}

// StatusCode implements handler.Response.
func (r redirectResponse) StatusCode() int { return r.status }

// Header implements handler.Response.
func (r redirectResponse) Header() http.Header { return r.header }

// Body implements handler.Response. Redirects carry no body.
func (r redirectResponse) Body() []byte { return nil }

// Location implements handler.Redirector.
func (r redirectResponse) Location() string { return r.url }

// Redirect sends the client to url with 302 Found, the everyday temporary
// redirect.
func Redirect(url string) handler.Response {
	return newRedirect(url, http.StatusFound)
}

// RedirectPermanent sends 301 Moved Permanently, telling clients and caches
// the resource lives at url from now on.
func RedirectPermanent(url string) handler.Response {
	return newRedirect(url, http.StatusMovedPermanently)
}

// RedirectSeeOther sends 303 See Other, the post-form redirect: the browser
// follows with a GET regardless of the original method.
func RedirectSeeOther(url string) handler.Response {
	return newRedirect(url, http.StatusSeeOther)
}

// RedirectTemporary sends 307 Temporary Redirect, which replays the original
// method and body against url.
func RedirectTemporary(url string) handler.Response {
	return newRedirect(url, http.StatusTemporaryRedirect)
}

// RedirectPermanentPreserve sends 308 Permanent Redirect, the
// method-preserving counterpart of 301.
func RedirectPermanentPreserve(url string) handler.Response {
	return newRedirect(url, http.StatusPermanentRedirect)
}

// RedirectWithStatus sends url with a caller-chosen 3xx status. Codes
// outside the 3xx range are replaced with 302.
func RedirectWithStatus(url string, status int) handler.Response {
	return newRedirect(url, status)
}
