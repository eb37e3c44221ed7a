package router

import (
	"net/http"
	"net/url"
	"strings"
)

// joinPattern prefixes pattern with the registration base so that exactly
// one slash separates segments and no trailing slash remains unless the
// result is the bare root.
func joinPattern(base, pattern string) string {
	p := base + "/" + strings.Trim(pattern, "/")
	if base != "" {
		p = strings.TrimRight(p, "/")
	}
	return p
}

// normalizeBasePath stores an explicit base path as "/prefix" with no
// trailing slash. The empty string and "/" mean no prefix.
func normalizeBasePath(base string) string {
	base = strings.Trim(base, "/")
	if base == "" {
		return ""
	}
	return "/" + base
}

// basePathFor returns the prefix to strip from the request path before
// matching. An explicit base path wins; otherwise the prefix is derived per
// request by comparing the raw request URI against the possibly rewritten
// URL path, which makes routers mounted behind http.StripPrefix work without
// configuration. Nothing is cached between requests.
func (m *mux[C]) basePathFor(r *http.Request, rawPath string) string {
	if m.basePath != "" {
		return m.basePath
	}
	urlPath := "/"
	if r.URL != nil && r.URL.Path != "" {
		urlPath = r.URL.Path
	}
	if rawPath != urlPath && strings.HasSuffix(rawPath, urlPath) {
		return rawPath[:len(rawPath)-len(urlPath)]
	}
	return ""
}

// currentPath normalizes the raw request URI for matching: the query string
// is cut, the path is decoded, the base path prefix is stripped, and the
// result collapses to a single leading slash with no trailing slash except
// for the bare root.
func (m *mux[C]) currentPath(r *http.Request) string {
	raw := r.RequestURI
	if raw == "" && r.URL != nil {
		raw = r.URL.RequestURI()
	}
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw = raw[:i]
	}
	if p, err := url.PathUnescape(raw); err == nil {
		raw = p
	}
	raw = strings.TrimPrefix(raw, m.basePathFor(r, raw))
	return "/" + strings.Trim(raw, "/")
}
