package slogx

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultsServiceName(t *testing.T) {
	logger := New(Config{Level: "error"})
	require.NotNil(t, logger)
	require.Same(t, logger, slog.Default())
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel("bogus"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Same(t, slog.Default(), FromContext(context.Background()))

	scoped := slog.Default().With("req_id", "r-1")
	ctx := WithContext(context.Background(), scoped)
	require.Same(t, scoped, FromContext(ctx))
}
