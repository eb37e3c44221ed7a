package router

import (
	"fmt"
	"net/http"
	"strings"
)

// AllMethods is the method list registered by All. It includes HEAD even
// though HEAD requests dispatch against GET routes, so HEAD entries created
// through All are reachable only via introspection.
const AllMethods = "GET|POST|PUT|DELETE|OPTIONS|PATCH|HEAD"

// MethodOverrideHeader is inspected on POST requests to dispatch the request
// as PUT, DELETE, or PATCH instead. Values are compared exactly; anything
// else leaves the method untouched.
const MethodOverrideHeader = "X-HTTP-Method-Override"

var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
	http.MethodHead:    {},
	http.MethodConnect: {},
	http.MethodTrace:   {},
}

// splitMethods parses a '|'-delimited method list. Unknown tokens panic:
// a registration typo must not produce a route that silently never matches.
func splitMethods(methods string) []string {
	tokens := strings.Split(methods, "|")
	for _, t := range tokens {
		if _, ok := knownMethods[t]; !ok {
			panic(fmt.Errorf("%w: '%s'", ErrInvalidMethod, t))
		}
	}
	return tokens
}

// effectiveMethod maps the raw request method to the table key used for
// matching. HEAD dispatches against GET with body emission suppressed, and
// POST honors MethodOverrideHeader.
func effectiveMethod(r *http.Request) (method string, suppressBody bool) {
	switch r.Method {
	case http.MethodHead:
		return http.MethodGet, true
	case http.MethodPost:
		switch ov := r.Header.Get(MethodOverrideHeader); ov {
		case http.MethodPut, http.MethodDelete, http.MethodPatch:
			return ov, false
		}
	}
	return r.Method, false
}
