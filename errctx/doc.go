// Package errctx attaches human-readable context to errors as they propagate.
//
// A Context pairs a caller-supplied context value with the error it annotates
// and renders as "<context>: <cause>". Wrapping repeatedly builds a causal
// chain that the standard library helpers (errors.Is, errors.As,
// errors.Unwrap) and github.com/pkg/errors.Cause walk one layer at a time.
//
// Key characteristics:
//   - Generic context value: strings, structs, anything fmt can render
//   - The cause is never nil once wrapped
//   - Success values pass through untouched; lazy contexts are only built on failure
//   - Immutable after construction, safe to hand across goroutines
//
// Fallible calls returning (T, error) are captured with Try and annotated with
// Ctx or WithCtx:
//
//	data, err := errctx.Ctx(errctx.Try(os.ReadFile("foo.txt")), "reading foo.txt")
//	// err, if any, prints as "reading foo.txt: open foo.txt: no such file or directory"
//
// Errors already in hand are annotated with Wrap, Annotate or AnnotateWith.
package errctx
