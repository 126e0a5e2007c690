package tools

import (
	"log/slog"

	"github.com/atlanticdynamic/decision-helper/internal/decision"
)

// Option configures a Toolset.
type Option func(*Toolset)

// WithLogHandler sets a custom slog handler for the Toolset.
func WithLogHandler(handler slog.Handler) Option {
	return func(ts *Toolset) {
		if handler != nil {
			ts.logger = slog.New(handler).WithGroup("tools")
		}
	}
}

// WithLogger sets a logger for the Toolset.
func WithLogger(logger *slog.Logger) Option {
	return func(ts *Toolset) {
		if logger != nil {
			ts.logger = logger
		}
	}
}

// WithKnownPriorities replaces the canonical priority spellings. An empty list disables
// canonicalization.
func WithKnownPriorities(known []string) Option {
	return func(ts *Toolset) {
		ts.canonical = decision.NewCanonicalizer(known)
	}
}

// WithIDGenerator replaces the decision ID source.
func WithIDGenerator(fn func() (string, error)) Option {
	return func(ts *Toolset) {
		if fn != nil {
			ts.newID = fn
		}
	}
}
