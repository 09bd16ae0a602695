package errctx

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/next-trace/scg-errctx/contract"
)

// ErrMissingCause stands in for the cause when a Context is built around a nil error.
var ErrMissingCause = errors.New("missing cause")

// separator joins the context and the cause in Error().
const separator = ": "

// Context is an error providing context for some underlying cause.
//
// Fields:
//   - context: caller-supplied annotation, rendered with fmt.Sprint
//   - cause:   the annotated error, never nil
type Context[C any] struct {
	context C
	cause   error
}

// compile-time guarantees for the interfaces *Context satisfies
var (
	_ contract.Contextual = (*Context[string])(nil)
	_ fmt.Formatter       = (*Context[string])(nil)
	_ slog.LogValuer      = (*Context[string])(nil)
)

// New creates a Context from a context value and the cause it annotates.
// A nil cause is replaced by ErrMissingCause.
func New[C any](context C, cause error) *Context[C] {
	if cause == nil {
		cause = ErrMissingCause
	}

	return &Context[C]{context: context, cause: cause}
}

// ------ standard error interface

func (c *Context[C]) Error() string {
	if c == nil {
		return "<nil>"
	}

	return fmt.Sprint(c.context) + separator + c.cause.Error()
}

func (c *Context[C]) Unwrap() error {
	if c == nil {
		return nil
	}

	return c.cause
}

// ------ getters

// Cause returns the wrapped error. It follows the github.com/pkg/errors
// convention so errors.Cause walks through context layers.
func (c *Context[C]) Cause() error { return c.Unwrap() }

// Value returns the context value, or the zero value for a nil receiver.
func (c *Context[C]) Value() C {
	if c == nil {
		var zero C
		return zero
	}

	return c.context
}

// ContextValue returns the context value untyped, or nil for a nil receiver.
func (c *Context[C]) ContextValue() any {
	if c == nil {
		return nil
	}

	return c.context
}

// ------ formatting

// Format implements fmt.Formatter.
//
//	%+v     context and cause both rendered with %+v, keeping the debug
//	        detail of nested causes
//	%#v     Go-syntax debug form, e.g. &errctx.Context[string]{context:"bar", cause:...}
//
// Every other verb formats Error() as a string, honouring width, precision
// and flags the way a plain error does.
func (c *Context[C]) Format(s fmt.State, verb rune) {
	if verb == 'v' && c != nil {
		switch {
		case s.Flag('+'):
			fmt.Fprintf(s, "%+v%s%+v", c.context, separator, c.cause)
			return
		case s.Flag('#'):
			fmt.Fprintf(s, "&%s{context:%#v, cause:%#v}",
				strings.TrimPrefix(fmt.Sprintf("%T", c), "*"), c.context, c.cause)
			return
		}
	}

	if verb == 'v' && c == nil && s.Flag('#') {
		fmt.Fprintf(s, "(%T)(nil)", c)
		return
	}

	fmt.Fprintf(s, fmt.FormatString(s, verb), c.Error())
}

// LogValue implements slog.LogValuer, recording the context and the cause
// as a group.
func (c *Context[C]) LogValue() slog.Value {
	if c == nil {
		return slog.StringValue("<nil>")
	}

	return slog.GroupValue(
		slog.Any("context", c.context),
		slog.String("cause", c.cause.Error()),
	)
}
