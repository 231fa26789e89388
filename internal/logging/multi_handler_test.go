package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler_FansOut(t *testing.T) {
	var first, second bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&first, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&second, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	logger := slog.New(h)
	logger.Info("hello", "key", "value")

	assert.Contains(t, first.String(), "hello")
	assert.Contains(t, second.String(), "hello")
}

func TestMultiHandler_RespectsLevels(t *testing.T) {
	var errorsOnly, everything bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&errorsOnly, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewJSONHandler(&everything, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	require.True(t, h.Enabled(context.Background(), slog.LevelInfo))

	logger := slog.New(h)
	logger.Info("routine")
	logger.Error("broken")

	assert.NotContains(t, errorsOnly.String(), "routine")
	assert.Contains(t, errorsOnly.String(), "broken")
	assert.Contains(t, everything.String(), "routine")
}

func TestMultiHandler_WithAttrs(t *testing.T) {
	var out bytes.Buffer
	h := NewMultiHandler(slog.NewJSONHandler(&out, nil))

	logger := slog.New(h).With("request_id", "abc-123")
	logger.Info("tagged")

	assert.Contains(t, out.String(), "abc-123")
}
