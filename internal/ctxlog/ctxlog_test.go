package ctxlog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/chainharness/internal/ctxlog"
)

func TestRoundTrip(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	require.Same(t, logger, ctxlog.FromContext(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	require.Same(t, slog.Default(), ctxlog.FromContext(context.Background()))
}
