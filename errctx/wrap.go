package errctx

import (
	"fmt"
)

// Wrap constructs a Context annotating err with context. It never returns nil;
// if err is nil the cause becomes ErrMissingCause.
func Wrap[C any](err error, context C) *Context[C] {
	return New(context, err)
}

// Wrapf is Wrap with a formatted string context.
func Wrapf(err error, format string, args ...any) *Context[string] {
	return New(fmt.Sprintf(format, args...), err)
}

// Annotate wraps err with context, passing nil through.
//
// Use it for fallible calls that only return an error:
//
//	if err := f.Close(); err != nil {
//	    return errctx.Annotate(err, "closing "+name)
//	}
func Annotate[C any](err error, context C) error {
	if err == nil {
		return nil
	}

	return New(context, err)
}

// AnnotateWith wraps err with the context computed by f. f is only called
// when err is non-nil.
func AnnotateWith[C any](err error, f func(error) C) error {
	if err == nil {
		return nil
	}

	return New(f(err), err)
}
