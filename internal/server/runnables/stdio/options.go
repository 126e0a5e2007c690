package stdio

import (
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option configures a Runner.
type Option func(*Runner)

// WithLogHandler sets a custom slog handler for the Runner instance.
func WithLogHandler(handler slog.Handler) Option {
	return func(r *Runner) {
		if handler != nil {
			r.logger = slog.New(handler).WithGroup("stdio.Runner")
		}
	}
}

// WithLogger sets a logger for the Runner instance.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTransport replaces the stdio transport, mostly for tests.
func WithTransport(transport mcp.Transport) Option {
	return func(r *Runner) {
		if transport != nil {
			r.transport = transport
		}
	}
}

// WithOnDisconnect registers fn to run when the host closes the session. The server command
// uses it to shut the supervisor down once stdin is closed.
func WithOnDisconnect(fn func()) Option {
	return func(r *Runner) {
		r.onDisconnect = fn
	}
}
