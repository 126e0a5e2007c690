// Package logger provides the access log middleware for the HTTP listener.
package logger

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// SessionHeader carries the MCP session id on streamable HTTP requests and responses.
const SessionHeader = "Mcp-Session-Id"

// lgr is implemented by slog.Logger
type lgr interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// AccessLogger logs one line per request
type AccessLogger struct {
	logger     lgr
	quietPaths []string
}

// NewAccessLogger creates an access logger. Requests to quietPaths are logged at debug level.
func NewAccessLogger(logger *slog.Logger, quietPaths ...string) *AccessLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &AccessLogger{
		logger:     logger.WithGroup("http"),
		quietPaths: quietPaths,
	}
}

// Middleware returns the middleware function
func (al *AccessLogger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		r := rp.Request()
		start := time.Now()

		rp.Next()

		status := rp.Writer().Status()
		if status == 0 {
			status = http.StatusOK
		}

		attrs := []slog.Attr{
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", r.RemoteAddr),
		}
		session := rp.Writer().Header().Get(SessionHeader)
		if session == "" {
			session = r.Header.Get(SessionHeader)
		}
		if session != "" {
			attrs = append(attrs, slog.String("session", session))
		}

		al.logger.LogAttrs(r.Context(), al.level(r.URL.Path, status), "HTTP request", attrs...)
	}
}

// level maps a response status to a log level
func (al *AccessLogger) level(path string, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	case slices.Contains(al.quietPaths, path):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
