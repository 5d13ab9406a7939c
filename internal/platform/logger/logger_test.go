package logger_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/barbell-api/internal/config"
	"github.com/phrazzld/barbell-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name         string
		logLevel     string
		enabledLevel slog.Level
		quietLevel   slog.Level
	}{
		{"debug level", "debug", slog.LevelDebug, slog.LevelDebug - 4},
		{"info level", "info", slog.LevelInfo, slog.LevelDebug},
		{"warn level", "warn", slog.LevelWarn, slog.LevelInfo},
		{"error level", "error", slog.LevelError, slog.LevelWarn},
		{"uppercase accepted", "WARN", slog.LevelWarn, slog.LevelInfo},
		{"invalid falls back to info", "verbose", slog.LevelInfo, slog.LevelDebug},
		{"empty falls back to info", "", slog.LevelInfo, slog.LevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			ctx := context.Background()
			assert.True(t, log.Enabled(ctx, tt.enabledLevel))
			assert.False(t, log.Enabled(ctx, tt.quietLevel))
		})
	}
}

func TestSetupSetsDefault(t *testing.T) {
	log, err := logger.Setup(config.ServerConfig{LogLevel: "info"})
	require.NoError(t, err)
	assert.Same(t, log, slog.Default())
}

func TestWithLoggerAndFromContext(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx := logger.WithLogger(context.Background(), custom)
	assert.Same(t, custom, logger.FromContext(ctx))
}

func TestWithLoggerNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		logger.WithLogger(context.Background(), nil)
	})
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	assert.Same(t, slog.Default(), logger.FromContext(nil)) //nolint:staticcheck // verifying nil-safety
}

func TestFromContextOrDefault(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	def := slog.New(slog.NewTextHandler(os.Stderr, nil))

	tests := []struct {
		name string
		ctx  context.Context
		def  *slog.Logger
		want *slog.Logger
	}{
		{"logger in context wins", logger.WithLogger(context.Background(), custom), def, custom},
		{"default when context empty", context.Background(), def, def},
		{"slog default when both missing", context.Background(), nil, slog.Default()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Same(t, tt.want, logger.FromContextOrDefault(tt.ctx, tt.def))
		})
	}
}
