// Package logging builds the slog handlers used by the server and CLI.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/atlanticdynamic/decision-helper/internal/config/logs"
	"github.com/atlanticdynamic/decision-helper/internal/logging/writers"
	"github.com/charmbracelet/log"
)

// levelOptions is the verbosity derived from a level name. Trace is debug plus caller info.
type levelOptions struct {
	level           slog.Level
	reportCaller    bool
	reportTimestamp bool
}

// parseLevel maps a level name to handler options; unknown names fall back to info.
func parseLevel(logLevel string) levelOptions {
	lvl, err := logs.LevelFromString(logLevel)
	if err != nil {
		lvl = logs.LevelInfo
	}

	switch lvl {
	case logs.LevelTrace:
		return levelOptions{level: slog.LevelDebug, reportCaller: true, reportTimestamp: true}
	case logs.LevelDebug:
		return levelOptions{level: slog.LevelDebug, reportTimestamp: true}
	case logs.LevelWarn:
		return levelOptions{level: slog.LevelWarn}
	case logs.LevelError:
		return levelOptions{level: slog.LevelError}
	default:
		return levelOptions{level: slog.LevelInfo}
	}
}

// SetupHandlerText configures a text slog handler with the provided writer and log level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	opts := parseLevel(logLevel)
	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: opts.reportTimestamp,
		ReportCaller:    opts.reportCaller,
		Level:           log.Level(opts.level),
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	opts := parseLevel(logLevel)
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level:     opts.level,
		AddSource: opts.reportCaller,
	})
}

// NewHandler builds the handler described by cfg. The returned closer releases the output,
// which matters when logging to a file.
func NewHandler(cfg logs.Config) (slog.Handler, io.Closer, error) {
	output := cfg.Output
	if output == "" {
		output = logs.OutputStderr
	}

	w, err := writers.CreateWriter(output)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log output: %w", err)
	}

	switch cfg.Format {
	case logs.FormatJSON:
		return SetupHandlerJSON(cfg.Level.String(), w), w, nil
	default:
		return SetupHandlerText(cfg.Level.String(), w), w, nil
	}
}
