package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/response"
	"github.com/dmitrymomot/routekit/core/router"
	"github.com/dmitrymomot/routekit/middleware"
)

func securedRouter(h handler.HandlerFunc[*router.Context]) router.Router[*router.Context] {
	r := router.New[*router.Context]()
	r.Before(router.AllMethods, "/.*", h)
	r.Get("/", func(ctx *router.Context, res handler.Response) handler.Response {
		return response.HTML("<h1>ok</h1>")
	})
	return r
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	t.Run("balanced profile by default", func(t *testing.T) {
		t.Parallel()

		r := securedRouter(middleware.SecurityHeaders[*router.Context]())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		h := rec.Header()
		assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
		assert.Equal(t, "SAMEORIGIN", h.Get("X-Frame-Options"))
		assert.Equal(t, "max-age=31536000; includeSubDomains", h.Get("Strict-Transport-Security"))
		assert.NotEmpty(t, h.Get("Content-Security-Policy"))
		assert.Equal(t, "strict-origin-when-cross-origin", h.Get("Referrer-Policy"))
		assert.Empty(t, h.Get("Cross-Origin-Embedder-Policy"))
	})

	t.Run("strict profile", func(t *testing.T) {
		t.Parallel()

		r := securedRouter(middleware.SecurityHeadersWithConfig[*router.Context](middleware.StrictSecurity))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		h := rec.Header()
		assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
		assert.Equal(t, "no-referrer", h.Get("Referrer-Policy"))
		assert.Equal(t, "require-corp", h.Get("Cross-Origin-Embedder-Policy"))
		assert.Contains(t, h.Get("Strict-Transport-Security"), "preload")
	})

	t.Run("development profile drops hsts", func(t *testing.T) {
		t.Parallel()

		r := securedRouter(middleware.SecurityHeadersWithConfig[*router.Context](middleware.DevelopmentSecurity))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		h := rec.Header()
		assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
		assert.Empty(t, h.Get("Strict-Transport-Security"))
		assert.Empty(t, h.Get("Content-Security-Policy"))
	})

	t.Run("development flag suppresses configured hsts", func(t *testing.T) {
		t.Parallel()

		cfg := middleware.BalancedSecurity
		cfg.IsDevelopment = true
		r := securedRouter(middleware.SecurityHeadersWithConfig[*router.Context](cfg))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
	})

	t.Run("custom headers applied", func(t *testing.T) {
		t.Parallel()

		cfg := middleware.RelaxedSecurity
		cfg.CustomHeaders = map[string]string{"X-Service": "routekit"}
		r := securedRouter(middleware.SecurityHeadersWithConfig[*router.Context](cfg))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "routekit", rec.Header().Get("X-Service"))
	})

	t.Run("skip leaves response bare", func(t *testing.T) {
		t.Parallel()

		cfg := middleware.StrictSecurity
		cfg.Skip = func(ctx handler.Context) bool { return true }
		r := securedRouter(middleware.SecurityHeadersWithConfig[*router.Context](cfg))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Empty(t, rec.Header().Get("X-Frame-Options"))
	})

	t.Run("handler response content type survives", func(t *testing.T) {
		t.Parallel()

		r := securedRouter(middleware.SecurityHeaders[*router.Context]())
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	})
}
