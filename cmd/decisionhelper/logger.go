package main

import (
	"io"
	"log/slog"

	"github.com/atlanticdynamic/decision-helper/internal/config/logs"
	"github.com/atlanticdynamic/decision-helper/internal/logging"
)

// setupLogger installs the default logger on w. Stdout carries the stdio transport, so
// callers pass stderr. An unrecognized level falls back to info and is reported.
func setupLogger(logLevel string, w io.Writer) {
	slog.SetDefault(slog.New(logging.SetupHandlerText(logLevel, w)))
	if _, err := logs.LevelFromString(logLevel); err != nil {
		slog.Warn("Unknown log level, using info", "logLevel", logLevel)
	}
}
