// Package contract exposes the minimal interface used by other packages to
// recognise context layers without knowing their context value type.
package contract

// Contextual is the minimal, stable surface of an error that annotates an
// underlying cause with a caller-supplied context value.
//
// Implementations must:
//   - Render as "<context>: <cause>" from Error().
//   - Never return nil from Unwrap() or Cause() on a non-nil receiver.
//   - Return the same cause from both.
type Contextual interface {
	error
	Unwrap() error
	Cause() error
	// ContextValue returns the annotation as an untyped value.
	ContextValue() any
}
