package response_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/response"
)

func TestWithHeaders(t *testing.T) {
	t.Parallel()

	t.Run("attaches headers to an existing value", func(t *testing.T) {
		t.Parallel()

		res := response.WithHeaders(response.String("ok"), map[string]string{
			"X-Request-ID": "abc",
			"X-Version":    "2",
		})
		assert.Equal(t, "abc", res.Header().Get("X-Request-ID"))
		assert.Equal(t, "2", res.Header().Get("X-Version"))
		assert.Equal(t, "ok", string(res.Body()))
	})

	t.Run("set semantics replace earlier values", func(t *testing.T) {
		t.Parallel()

		res := response.WithHeaders(response.String("ok"), map[string]string{"X-Tag": "one"})
		res = response.WithHeaders(res, map[string]string{"X-Tag": "two"})
		assert.Equal(t, []string{"two"}, res.Header().Values("X-Tag"))
	})

	t.Run("nil response and empty maps pass through", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, response.WithHeaders(nil, map[string]string{"X": "1"}))

		res := response.String("ok")
		assert.Equal(t, res, response.WithHeaders(res, nil))
	})
}

func TestWithCookie(t *testing.T) {
	t.Parallel()

	t.Run("adds a set-cookie header", func(t *testing.T) {
		t.Parallel()

		res := response.WithCookie(response.String("ok"), &http.Cookie{
			Name:     "session",
			Value:    "abc123",
			Path:     "/",
			HttpOnly: true,
		})

		cookie := res.Header().Get("Set-Cookie")
		assert.Contains(t, cookie, "session=abc123")
		assert.Contains(t, cookie, "Path=/")
		assert.Contains(t, cookie, "HttpOnly")
	})

	t.Run("multiple cookies accumulate", func(t *testing.T) {
		t.Parallel()

		res := response.WithCookie(response.String("ok"), &http.Cookie{Name: "a", Value: "1"})
		res = response.WithCookie(res, &http.Cookie{Name: "b", Value: "2"})

		values := res.Header().Values("Set-Cookie")
		require.Len(t, values, 2)
		assert.Equal(t, "a=1", values[0])
		assert.Equal(t, "b=2", values[1])
	})

	t.Run("invalid cookies are dropped", func(t *testing.T) {
		t.Parallel()

		res := response.WithCookie(response.String("ok"), &http.Cookie{Name: "", Value: "1"})
		assert.Empty(t, res.Header().Values("Set-Cookie"))
	})

	t.Run("nil inputs pass through", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, response.WithCookie(nil, &http.Cookie{Name: "a", Value: "1"}))

		res := response.String("ok")
		assert.Equal(t, res, response.WithCookie(res, nil))
	})
}

func TestWithCache(t *testing.T) {
	t.Parallel()

	t.Run("positive max age enables caching", func(t *testing.T) {
		t.Parallel()

		res := response.WithCache(response.String("ok"), 5*time.Minute)
		assert.Equal(t, "public, max-age=300", res.Header().Get("Cache-Control"))

		expires, err := time.Parse(http.TimeFormat, res.Header().Get("Expires"))
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(5*time.Minute), expires, 5*time.Second)
	})

	t.Run("zero and negative max age disable caching", func(t *testing.T) {
		t.Parallel()

		for _, maxAge := range []time.Duration{0, -time.Minute} {
			res := response.WithCache(response.String("ok"), maxAge)
			assert.Equal(t, "no-cache, no-store, must-revalidate", res.Header().Get("Cache-Control"))
			assert.Equal(t, "no-cache", res.Header().Get("Pragma"))
			assert.Equal(t, "0", res.Header().Get("Expires"))
		}
	})

	t.Run("nil response passes through", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, response.WithCache(nil, time.Minute))
	})
}
