package errctx

// Result captures the outcome of a fallible call returning (T, error) so it
// can be passed on together with a context value.
type Result[T any] struct {
	value T
	err   error
}

// Try captures a fallible call. It is meant to take the call directly:
//
//	errctx.Try(os.ReadFile(name))
func Try[T any](value T, err error) Result[T] {
	return Result[T]{value: value, err: err}
}

// Unpack returns the captured pair unchanged.
func (r Result[T]) Unpack() (T, error) { return r.value, r.err }

// Value returns the captured value.
func (r Result[T]) Value() T { return r.value }

// Err returns the captured error.
func (r Result[T]) Err() error { return r.err }

// Failed reports whether the captured call failed.
func (r Result[T]) Failed() bool { return r.err != nil }

// Ctx returns r unchanged on success. On failure the error is wrapped in a
// *Context[C] carrying context. The captured value is returned as-is either way.
func Ctx[T, C any](r Result[T], context C) (T, error) {
	if r.err == nil {
		return r.value, nil
	}

	return r.value, New(context, r.err)
}

// WithCtx is Ctx with a lazily computed context. f receives the original
// error and is invoked exactly once, only on failure.
func WithCtx[T, C any](r Result[T], f func(error) C) (T, error) {
	if r.err == nil {
		return r.value, nil
	}

	return r.value, New(f(r.err), r.err)
}
