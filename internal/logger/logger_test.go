package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitLoggerWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	config := NewConfig("info", "json", "callbeta", "test", "test", false)
	InitLoggerWithWriter(config, &buf)

	slog.Info("hello", "key", "value")

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"service":"callbeta"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	config := NewConfig("warn", "text", "callbeta", "test", "test", false)
	InitLoggerWithWriter(config, &buf)

	slog.Debug("debug message")
	slog.Info("info message")
	slog.Warn("warn message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
}

func TestFromContextIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("info", "text", "callbeta", "test", "test", false), &buf)

	id := GenerateRequestID()
	ctx := WithRequestID(context.Background(), id)
	FromContext(ctx).Info("traced")

	assert.Contains(t, buf.String(), id)
}

func TestRequestIDFromContextMissing(t *testing.T) {
	_, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestLogLevelParsing(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		c := Config{Level: in}
		assert.Equal(t, want, c.LogLevel(), strings.ToLower(in))
	}
}
