package errors_test

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/myrjola/tutorials/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestAnnotatedError(t *testing.T) {
	err := errors.New("test error", slog.String("id", "123"))
	require.Equal(t, "test error", err.Error())

	var annotated errors.AnnotatedError
	require.True(t, errors.As(err, &annotated))

	// Ensure log values are coming through.
	group := annotated.LogValue().Group()
	require.Contains(t, group, slog.String("id", "123"))

	// Assert there's a valid source.
	sourceIdx := slices.IndexFunc(group, func(attr slog.Attr) bool {
		return attr.Key == "source"
	})
	require.NotEqual(t, -1, sourceIdx)
	require.Contains(t, group[sourceIdx].Value.String(), "annotatederror_test.go")
}

func TestWrap(t *testing.T) {
	sentinel := errors.NewSentinel("sentinel")
	require.NotErrorIs(t, errors.New("sentinel"), sentinel)

	wrapped := errors.Wrap(sentinel, "read cookie", slog.String("name", "user_type"))
	require.ErrorIs(t, wrapped, sentinel)
	require.Equal(t, "read cookie: sentinel", wrapped.Error())

	twice := errors.Wrap(wrapped, "handle request")
	require.ErrorIs(t, twice, sentinel)
	require.Equal(t, "handle request: read cookie: sentinel", twice.Error())

	require.NoError(t, errors.Wrap(nil, "nothing to wrap"))
}

func TestSlogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	err := errors.Wrap(errors.NewSentinel("boom"), "fetch posts", slog.Int("status", 502))
	logger.Error("server error", errors.SlogError(err))

	out := buf.String()
	require.Contains(t, out, `error.message="fetch posts: boom"`)
	require.Contains(t, out, "error.0.status=502")
	require.Contains(t, out, "annotatederror_test.go")
}
