package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel log.Level
	}{
		{"debug", "debug", log.DebugLevel},
		{"trace maps to debug", "trace", log.DebugLevel},
		{"info", "info", log.InfoLevel},
		{"warn", "warn", log.WarnLevel},
		{"error", "error", log.ErrorLevel},
		{"uppercase", "WARN", log.WarnLevel},
		{"empty defaults to info", "", log.InfoLevel},
		{"unknown defaults to info", "verbose", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.logLevel, io.Discard)
			logger := slog.Default()
			ctx := t.Context()

			actualLevel := log.FatalLevel
			switch {
			case logger.Enabled(ctx, slog.LevelDebug):
				actualLevel = log.DebugLevel
			case logger.Enabled(ctx, slog.LevelInfo):
				actualLevel = log.InfoLevel
			case logger.Enabled(ctx, slog.LevelWarn):
				actualLevel = log.WarnLevel
			case logger.Enabled(ctx, slog.LevelError):
				actualLevel = log.ErrorLevel
			}

			assert.Equal(t, tt.expectedLevel, actualLevel,
				"expected log level %s for input %q, got %s", tt.expectedLevel, tt.logLevel, actualLevel)
		})
	}
}

func TestSetupLogger_Output(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)

	t.Run("unknown level is reported", func(t *testing.T) {
		var buf bytes.Buffer
		setupLogger("verbose", &buf)
		assert.Contains(t, buf.String(), "Unknown log level")
		assert.Contains(t, buf.String(), "verbose")
	})

	t.Run("known level is quiet", func(t *testing.T) {
		var buf bytes.Buffer
		setupLogger("debug", &buf)
		assert.Empty(t, buf.String())
	})

	t.Run("writes to the given writer", func(t *testing.T) {
		var buf bytes.Buffer
		setupLogger("info", &buf)
		slog.Info("hello")
		assert.Contains(t, buf.String(), "hello")
	})
}
