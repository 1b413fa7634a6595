package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skunkedgame/skunkd/internal/logger"
)

func TestGenerateRequestID_Unique(t *testing.T) {
	a := logger.GenerateRequestID()
	b := logger.GenerateRequestID()

	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := logger.RequestIDFromContext(ctx)
	assert.False(t, ok)

	ctx = logger.WithRequestID(ctx, "req-123")
	id, ok := logger.RequestIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "req-123", id)
}

func TestFromContext_WithoutIDReturnsDefault(t *testing.T) {
	log := logger.FromContext(context.Background())
	assert.NotNil(t, log)
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := logger.Config{Level: tt.level}
			assert.Equal(t, tt.want, cfg.LogLevel())
		})
	}
}

func TestConfig_IsJSON(t *testing.T) {
	assert.True(t, logger.Config{Format: "json"}.IsJSON())
	assert.True(t, logger.Config{Format: "JSON"}.IsJSON())
	assert.False(t, logger.Config{Format: "text"}.IsJSON())
}
