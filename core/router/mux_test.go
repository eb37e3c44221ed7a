package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/routekit/core/handler"
	"github.com/dmitrymomot/routekit/core/response"
	"github.com/dmitrymomot/routekit/core/router"
)

// echo returns a handler that responds with the given body.
func echo(body string) handler.HandlerFunc[*router.Context] {
	return func(ctx *router.Context, res handler.Response) handler.Response {
		return response.String(body)
	}
}

// mark returns a handler that appends name to trace and passes the response
// through unchanged.
func mark(trace *[]string, name string) handler.HandlerFunc[*router.Context] {
	return func(ctx *router.Context, res handler.Response) handler.Response {
		*trace = append(*trace, name)
		return res
	}
}

func serve(r router.Router[*router.Context], method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestMethodDispatch(t *testing.T) {
	t.Parallel()

	t.Run("method helpers register their method only", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/x", echo("get"))
		r.Post("/x", echo("post"))
		r.Put("/x", echo("put"))
		r.Patch("/x", echo("patch"))
		r.Delete("/x", echo("delete"))
		r.Options("/x", echo("options"))

		for method, want := range map[string]string{
			http.MethodGet:     "get",
			http.MethodPost:    "post",
			http.MethodPut:     "put",
			http.MethodPatch:   "patch",
			http.MethodDelete:  "delete",
			http.MethodOptions: "options",
		} {
			rec := serve(r, method, "/x")
			assert.Equal(t, http.StatusOK, rec.Code, method)
			assert.Equal(t, want, rec.Body.String(), method)
		}
	})

	t.Run("multi method registration", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Match("GET|POST", "/x", echo("either"))

		assert.Equal(t, "either", serve(r, http.MethodGet, "/x").Body.String())
		assert.Equal(t, "either", serve(r, http.MethodPost, "/x").Body.String())
		assert.Equal(t, http.StatusNotFound, serve(r, http.MethodPut, "/x").Code)
	})

	t.Run("all covers the standard set", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.All("/x", echo("any"))

		for _, method := range []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		} {
			assert.Equal(t, "any", serve(r, method, "/x").Body.String(), method)
		}
	})

	t.Run("unregistered method is not found", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/x", echo("get"))

		rec := serve(r, http.MethodDelete, "/x")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("nonstandard request method is not found", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/x", echo("get"))

		// Registration validates methods, dispatch does not: an exotic
		// request method simply finds an empty table.
		rec := serve(r, "PURGE", "/x")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid method token panics at registration", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		assert.PanicsWithError(t, router.ErrInvalidMethod.Error()+": 'FETCH'", func() {
			r.Match("GET|FETCH", "/x", echo("oops"))
		})
	})

	t.Run("nil handler panics at registration", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		assert.PanicsWithError(t, router.ErrNilHandler.Error()+": route '/x'", func() {
			r.Get("/x", nil)
		})
	})
}

func TestHeadRequests(t *testing.T) {
	t.Parallel()

	t.Run("head dispatches against get without a body", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/doc", func(ctx *router.Context, res handler.Response) handler.Response {
			return response.WithHeaders(response.String("payload"), map[string]string{
				"X-Doc-Version": "3",
			})
		})

		rec := serve(r, http.MethodHead, "/doc")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, "3", rec.Header().Get("X-Doc-Version"))
	})

	t.Run("head counts as handled", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/doc", echo("payload"))

		rec := httptest.NewRecorder()
		assert.True(t, r.Run(rec, httptest.NewRequest(http.MethodHead, "/doc", nil)))
	})

	t.Run("head misses when no get route matches", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Post("/doc", echo("payload"))

		rec := serve(r, http.MethodHead, "/doc")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestMethodOverride(t *testing.T) {
	t.Parallel()

	newRouter := func() router.Router[*router.Context] {
		r := router.New[*router.Context]()
		r.Post("/res", echo("post"))
		r.Put("/res", echo("put"))
		r.Delete("/res", echo("delete"))
		r.Patch("/res", echo("patch"))
		return r
	}

	override := func(r router.Router[*router.Context], value string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/res", nil)
		req.Header.Set(router.MethodOverrideHeader, value)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("post rerouted to put delete patch", func(t *testing.T) {
		t.Parallel()

		r := newRouter()
		assert.Equal(t, "put", override(r, "PUT").Body.String())
		assert.Equal(t, "delete", override(r, "DELETE").Body.String())
		assert.Equal(t, "patch", override(r, "PATCH").Body.String())
	})

	t.Run("unsupported and malformed values ignored", func(t *testing.T) {
		t.Parallel()

		r := newRouter()
		assert.Equal(t, "post", override(r, "GET").Body.String())
		assert.Equal(t, "post", override(r, "put").Body.String())
		assert.Equal(t, "post", override(r, "TRACE").Body.String())
		assert.Equal(t, "post", override(r, "").Body.String())
	})

	t.Run("header ignored on non post requests", func(t *testing.T) {
		t.Parallel()

		r := newRouter()
		r.Get("/res", echo("get"))

		req := httptest.NewRequest(http.MethodGet, "/res", nil)
		req.Header.Set(router.MethodOverrideHeader, "DELETE")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, "get", rec.Body.String())
	})
}

func TestDispatchOrder(t *testing.T) {
	t.Parallel()

	t.Run("first matching main route wins", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Get("/users/{id}", echo("param"))
		r.Get("/users/me", echo("literal"))

		// Registration order decides, not specificity.
		assert.Equal(t, "param", serve(r, http.MethodGet, "/users/me").Body.String())
	})

	t.Run("before runs every match in order", func(t *testing.T) {
		t.Parallel()

		var trace []string
		r := router.New[*router.Context]()
		r.Before(http.MethodGet, "/.*", mark(&trace, "b1"))
		r.Before(http.MethodGet, "/users/.*", mark(&trace, "b2"))
		r.Before(http.MethodGet, "/admin/.*", mark(&trace, "skip"))
		r.Get("/users/{id}", func(ctx *router.Context, res handler.Response) handler.Response {
			trace = append(trace, "main")
			return response.String("ok")
		})
		r.After(http.MethodGet, "/.*", mark(&trace, "a1"))
		r.After(http.MethodGet, "/users/.*", mark(&trace, "a2"))

		rec := serve(r, http.MethodGet, "/users/7")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, []string{"b1", "b2", "main", "a1", "a2"}, trace)
	})

	t.Run("after skipped when no main route matched", func(t *testing.T) {
		t.Parallel()

		var trace []string
		r := router.New[*router.Context]()
		r.Before(http.MethodGet, "/.*", mark(&trace, "before"))
		r.After(http.MethodGet, "/.*", mark(&trace, "after"))

		rec := serve(r, http.MethodGet, "/missing")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, []string{"before"}, trace)
	})

	t.Run("before sees params of its own pattern", func(t *testing.T) {
		t.Parallel()

		var beforeParams, mainParams []handler.Param
		r := router.New[*router.Context]()
		r.Before(http.MethodGet, "/tenants/{tenant}/.*", func(ctx *router.Context, res handler.Response) handler.Response {
			beforeParams = ctx.Params()
			return res
		})
		r.Get("/tenants/{tenant}/users/{id}", func(ctx *router.Context, res handler.Response) handler.Response {
			mainParams = ctx.Params()
			return response.String("ok")
		})

		serve(r, http.MethodGet, "/tenants/acme/users/7")
		require.Len(t, beforeParams, 1)
		assert.Equal(t, "acme", beforeParams[0].Value)
		require.Len(t, mainParams, 2)
		assert.Equal(t, "acme", mainParams[0].Value)
		assert.Equal(t, "7", mainParams[1].Value)
	})

	t.Run("middleware responses thread through the pipeline", func(t *testing.T) {
		t.Parallel()

		r := router.New[*router.Context]()
		r.Before(http.MethodGet, "/.*", func(ctx *router.Context, res handler.Response) handler.Response {
			return response.WithHeaders(res, map[string]string{"X-Before": "1"})
		})
		r.Get("/x", func(ctx *router.Context, res handler.Response) handler.Response {
			// Carries forward what before produced.
			assert.Equal(t, "1", res.Header().Get("X-Before"))
			return response.WithHeaders(response.String("ok"), map[string]string{"X-Main": "1"})
		})
		r.After(http.MethodGet, "/.*", func(ctx *router.Context, res handler.Response) handler.Response {
			return response.WithHeaders(res, map[string]string{"X-After": "1"})
		})

		rec := serve(r, http.MethodGet, "/x")
		assert.Equal(t, "1", rec.Header().Get("X-Main"))
		assert.Equal(t, "1", rec.Header().Get("X-After"))
		assert.Equal(t, "ok", rec.Body.String())
	})
}

func TestRoutesIntrospection(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/users", echo("list"))
	r.Post("/users", echo("create"))
	r.Get("/users/{id}", echo("show"))
	r.Before(http.MethodGet, "/.*", mark(new([]string), "mw"))
	r.NotFound("/", echo("404"))

	routes := r.Routes()
	// Middleware and fallbacks are not main routes.
	require.Len(t, routes, 3)
	assert.Equal(t, []router.Route{
		{Method: http.MethodGet, Pattern: "/users"},
		{Method: http.MethodPost, Pattern: "/users"},
		{Method: http.MethodGet, Pattern: "/users/{id}"},
	}, routes)
}
