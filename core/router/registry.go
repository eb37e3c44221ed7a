package router

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/routekit/core/handler"
)

// Registry maps symbolic handler references to first-class handlers.
// References use the "Controller@method" form or any plain name. Lookups
// happen at route registration time, never during dispatch, so an unknown
// reference fails while the application is wiring its routes.
type Registry[C handler.Context] struct {
	handlers map[string]handler.HandlerFunc[C]
}

func newRegistry[C handler.Context]() *Registry[C] {
	return &Registry[C]{handlers: make(map[string]handler.HandlerFunc[C])}
}

// Register binds a reference to a handler. Registering the same reference
// again replaces the previous handler.
func (g *Registry[C]) Register(ref string, h handler.HandlerFunc[C]) {
	if h == nil {
		panic(fmt.Errorf("%w: '%s'", ErrNilHandler, ref))
	}
	g.handlers[ref] = h
}

// RegisterController binds every entry of methods under the
// "controller@method" form.
func (g *Registry[C]) RegisterController(controller string, methods map[string]handler.HandlerFunc[C]) {
	for name, h := range methods {
		g.Register(controller+"@"+name, h)
	}
}

// Resolve returns the handler bound to ref. A non-empty namespace prefixes
// "Controller@method" references as "ns.Controller@method"; plain references
// are looked up as given.
func (g *Registry[C]) Resolve(ref, namespace string) (handler.HandlerFunc[C], error) {
	name := ref
	if namespace != "" && strings.Contains(ref, "@") {
		name = namespace + "." + ref
	}
	if h, ok := g.handlers[name]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("%w: '%s'", ErrUnknownHandler, name)
}
