// Package report renders and logs error chains built with errctx, one
// annotation per line, outermost first.
package report

import (
	"errors"

	"github.com/next-trace/scg-errctx/contract"
)

// Chain returns err followed by every error reachable through errors.Unwrap,
// outermost first. A nil err yields nil. The walk stops after 1024 layers.
//
// Only single-cause unwrapping is followed: an error whose Unwrap returns
// []error (errors.Join, multi-%w fmt.Errorf) is the last element, and its
// branches are not walked.
func Chain(err error) []error {
	return chain(err, defaultMaxDepth)
}

func chain(err error, maxDepth int) []error {
	var out []error
	for err != nil && len(out) < maxDepth {
		out = append(out, err)
		err = errors.Unwrap(err)
	}

	return out
}

// Root returns the innermost error of the chain, or nil for a nil err.
func Root(err error) error {
	c := Chain(err)
	if len(c) == 0 {
		return nil
	}

	return c[len(c)-1]
}

// Contexts returns the context values of every contract.Contextual layer in
// the chain, outermost first.
func Contexts(err error) []any {
	var out []any
	for _, e := range Chain(err) {
		if c, ok := e.(contract.Contextual); ok {
			out = append(out, c.ContextValue())
		}
	}

	return out
}
