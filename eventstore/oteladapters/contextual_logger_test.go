package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/shelfwise/circulation/eventstore/oteladapters"
)

func Test_SlogBridgeLogger_AllLevels(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "debug message", "loan_id", "l-1")
	logger.InfoContext(ctx, "info message", "event_count", 3)
	logger.WarnContext(ctx, "warn message")
	logger.ErrorContext(ctx, "error message", "error", "boom")

	// assert
	output := buf.String()
	assert.Contains(t, output, `"msg":"debug message"`)
	assert.Contains(t, output, `"loan_id":"l-1"`)
	assert.Contains(t, output, `"event_count":3`)
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"error":"boom"`)
}

func Test_SlogBridgeLogger_UsesGivenProvider(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLoggerWithProvider("circulation", noop.NewLoggerProvider())

	assert.NotPanics(t, func() {
		logger.InfoContext(context.Background(), "message", "key", "value")
	})
}

func Test_OTelLogger_ArgumentHandling(t *testing.T) {
	// arrange
	logger := oteladapters.NewOTelLogger(noop.NewLoggerProvider().Logger("test"))
	tracer := sdktrace.NewTracerProvider().Tracer("test")
	ctx, span := tracer.Start(context.Background(), "op")
	defer span.End()

	// act + assert
	require.NotPanics(t, func() {
		logger.InfoContext(ctx, "typed args", "s", "text", "i", 1, "f", 1.5, "b", true)
		logger.WarnContext(ctx, "dangling key", "key1", "value1", "key2")
		logger.ErrorContext(ctx, "non-string key", 42, "value")
		logger.DebugContext(ctx, "no args")
	})
}
