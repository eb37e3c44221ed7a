package handler

import (
	"context"
	"net/http"
)

// Param is a positional path parameter captured by a route pattern.
// Valid is false when the capture group did not engage, which happens with
// optional groups embedded in a pattern.
type Param struct {
	Value string
	Valid bool
}

// Context defines the contract for request contexts in the toolkit.
// Use router.Context for the default implementation.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter

	// Param returns the i-th positional parameter of the currently matched
	// pattern. Out-of-range indexes return an invalid Param.
	Param(i int) Param

	// Params returns all positional parameters in pattern order.
	Params() []Param

	// SetParams replaces the positional parameters. The router calls it
	// before every handler invocation; application code rarely needs it.
	SetParams(params []Param)

	SetValue(key, val any)
}
