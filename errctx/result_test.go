package errctx_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-errctx/errctx"
)

func TestTry_Accessors(t *testing.T) {
	t.Parallel()

	ok := errctx.Try(strconv.Atoi("12"))
	assert.False(t, ok.Failed())
	assert.Equal(t, 12, ok.Value())
	assert.NoError(t, ok.Err())

	bad := errctx.Try(strconv.Atoi("x"))
	v, err := bad.Unpack()
	assert.True(t, bad.Failed())
	assert.Equal(t, 0, v)
	assert.Error(t, err)
}

func TestCtx_SuccessIsIdentity(t *testing.T) {
	t.Parallel()

	v, err := errctx.Ctx(errctx.Try("payload", nil), "unused")

	require.NoError(t, err)
	assert.Equal(t, "payload", v)
}

func TestCtx_FailureIsWrapped(t *testing.T) {
	t.Parallel()

	cause := errors.New("foo")
	_, err := errctx.Ctx(errctx.Try(0, cause), "bar")

	require.Error(t, err)
	assert.Equal(t, "bar: foo", err.Error())
	assert.ErrorIs(t, err, cause)

	var c *errctx.Context[string]
	require.ErrorAs(t, err, &c)
	assert.Equal(t, "bar", c.Value())
	assert.Same(t, cause, c.Unwrap())
}

func TestCtx_ReadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "foo.txt")
	data, err := errctx.Ctx(errctx.Try(os.ReadFile(path)), "reading foo.txt")

	require.Error(t, err)
	assert.Empty(t, data)
	assert.True(t, strings.HasPrefix(err.Error(), "reading foo.txt: "), "got %q", err.Error())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWithCtx_LazyContext(t *testing.T) {
	t.Parallel()

	t.Run("success never calls f", func(t *testing.T) {
		t.Parallel()

		calls := 0
		v, err := errctx.WithCtx(errctx.Try(7, nil), func(error) string {
			calls++
			return "unused"
		})

		require.NoError(t, err)
		assert.Equal(t, 7, v)
		assert.Zero(t, calls)
	})

	t.Run("failure calls f once with the original error", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("foo")
		calls := 0

		var seen error

		_, err := errctx.WithCtx(errctx.Try(0, cause), func(e error) string {
			calls++
			seen = e
			return "derived from " + e.Error()
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
		assert.Same(t, cause, seen)
		assert.Equal(t, "derived from foo: foo", err.Error())
	})

	t.Run("matches eager Ctx", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("foo")
		f := func(e error) string { return "ctx(" + e.Error() + ")" }

		_, lazy := errctx.WithCtx(errctx.Try(0, cause), f)
		_, eager := errctx.Ctx(errctx.Try(0, cause), f(cause))

		assert.Equal(t, eager.Error(), lazy.Error())
		assert.Equal(t, errors.Unwrap(eager), errors.Unwrap(lazy))
	})
}

func TestCtx_Nesting(t *testing.T) {
	t.Parallel()

	cause := errors.New("e")
	_, err := errctx.Ctx(errctx.Try(0, cause), "c1")
	_, err = errctx.Ctx(errctx.Try(0, err), "c2")

	assert.Equal(t, "c2: c1: e", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, errctx.Annotate(nil, "unused"))

	err := errctx.Annotate(errors.New("foo"), "bar")
	assert.EqualError(t, err, "bar: foo")

	type step struct{ N int }
	err = errctx.Annotate(err, step{N: 2})
	assert.EqualError(t, err, "{2}: bar: foo")
}

func TestAnnotateWith(t *testing.T) {
	t.Parallel()

	called := false
	assert.NoError(t, errctx.AnnotateWith(nil, func(error) string {
		called = true
		return "unused"
	}))
	assert.False(t, called)

	err := errctx.AnnotateWith(errors.New("foo"), func(e error) int { return len(e.Error()) })
	assert.EqualError(t, err, "3: foo")
}

func TestWrapf(t *testing.T) {
	t.Parallel()

	err := errctx.Wrapf(errors.New("foo"), "reading %s (attempt %d)", "a.txt", 2)

	assert.EqualError(t, err, "reading a.txt (attempt 2): foo")
	assert.Equal(t, "reading a.txt (attempt 2)", err.Value())
}
