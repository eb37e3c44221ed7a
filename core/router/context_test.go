package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/router"
)

type ctxKey struct{}

func TestContext(t *testing.T) {
	t.Parallel()

	newCtx := func() (*router.Context, *httptest.ResponseRecorder, *http.Request) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		return router.NewContext(rec, req), rec, req
	}

	t.Run("request and writer accessors", func(t *testing.T) {
		t.Parallel()

		ctx, rec, req := newCtx()
		assert.Same(t, req, ctx.Request())
		assert.Same(t, rec, ctx.ResponseWriter())
	})

	t.Run("params are positional", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := newCtx()
		ctx.SetParams([]handler.Param{
			{Value: "42", Valid: true},
			{Valid: false},
		})

		assert.Equal(t, handler.Param{Value: "42", Valid: true}, ctx.Param(0))
		assert.False(t, ctx.Param(1).Valid)
		assert.Len(t, ctx.Params(), 2)
	})

	t.Run("out of range params are invalid", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := newCtx()
		assert.Equal(t, handler.Param{}, ctx.Param(0))
		assert.Equal(t, handler.Param{}, ctx.Param(-1))

		ctx.SetParams([]handler.Param{{Value: "a", Valid: true}})
		assert.Equal(t, handler.Param{}, ctx.Param(1))
	})

	t.Run("set value round trips", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := newCtx()
		ctx.SetValue(ctxKey{}, "stored")
		assert.Equal(t, "stored", ctx.Value(ctxKey{}))
	})

	t.Run("value falls back to the request context", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "from request"))
		ctx := router.NewContext(rec, req)

		assert.Equal(t, "from request", ctx.Value(ctxKey{}))

		// Own values shadow the request context.
		ctx.SetValue(ctxKey{}, "own")
		assert.Equal(t, "own", ctx.Value(ctxKey{}))
	})

	t.Run("delegates cancellation to the request context", func(t *testing.T) {
		t.Parallel()

		base, cancel := context.WithCancel(context.Background())
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil).WithContext(base)
		ctx := router.NewContext(rec, req)

		require.NoError(t, ctx.Err())
		cancel()
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
		select {
		case <-ctx.Done():
		default:
			t.Fatal("Done channel not closed after cancel")
		}
	})

	t.Run("delegates deadline to the request context", func(t *testing.T) {
		t.Parallel()

		deadline := time.Now().Add(time.Minute)
		base, cancel := context.WithDeadline(context.Background(), deadline)
		defer cancel()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil).WithContext(base)
		ctx := router.NewContext(rec, req)

		d, ok := ctx.Deadline()
		require.True(t, ok)
		assert.Equal(t, deadline, d)
	})

	t.Run("concurrent value access is safe", func(t *testing.T) {
		t.Parallel()

		ctx, _, _ := newCtx()
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				ctx.SetValue(n, n)
				_ = ctx.Value(n)
			}(i)
		}
		wg.Wait()
	})
}
