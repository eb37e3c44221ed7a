package router

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/routekit/core/handler"
)

// placeholderExpr matches /{name} placeholders in a route pattern.
var placeholderExpr = regexp.MustCompile(`/\{(.*?)\}`)

// patternMatcher is a compiled route pattern.
type patternMatcher struct {
	re     *regexp.Regexp
	groups int
}

// compilePattern translates a route pattern into an anchored regular
// expression. Every /{name} placeholder becomes a non-greedy wildcard capture
// bound to the preceding separator. Text outside placeholders passes through
// verbatim, so patterns may embed raw regular expression fragments such as
// optional groups or character classes.
func compilePattern(pattern string) (*patternMatcher, error) {
	expr := placeholderExpr.ReplaceAllString(pattern, "/(.*?)")
	re, err := regexp.Compile("^" + expr + "$")
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrInvalidPattern, pattern, err)
	}
	return &patternMatcher{re: re, groups: re.NumSubexp()}, nil
}

// match reports whether path matches the pattern and returns one parameter
// per capture group, in pattern order.
//
// The wildcard captures are non-greedy, so a capture may under-match when
// several appear in one pattern. Parameter boundaries are recovered from the
// submatch offsets: a parameter is clamped to end where the next engaged
// capture begins, and the last parameter keeps the full remaining matched
// text. A capture that did not engage yields an invalid Param.
func (m *patternMatcher) match(path string) ([]handler.Param, bool) {
	idx := m.re.FindStringSubmatchIndex(path)
	if idx == nil {
		return nil, false
	}
	if m.groups == 0 {
		return nil, true
	}
	params := make([]handler.Param, m.groups)
	for i := 1; i <= m.groups; i++ {
		start, end := idx[2*i], idx[2*i+1]
		if start < 0 {
			continue
		}
		if i < m.groups {
			if next := idx[2*(i+1)]; next >= 0 && next < end {
				end = next
			}
		}
		params[i-1] = handler.Param{Value: strings.Trim(path[start:end], "/"), Valid: true}
	}
	return params, true
}
