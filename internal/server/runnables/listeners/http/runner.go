// Package http serves the MCP streamable HTTP transport and a health route as a supervised runnable.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/atlanticdynamic/decision-helper/internal/config"
	"github.com/atlanticdynamic/decision-helper/internal/server/runnables/listeners/http/httpserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Interface guards
var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
)

// Runner exposes an MCP server over streamable HTTP
type Runner struct {
	server *httpserver.HTTPServer
	logger *slog.Logger

	address   string
	path      string
	stateless bool
}

// NewRunner creates an HTTP listener for mcpServer using the transport settings.
func NewRunner(mcpServer *mcp.Server, transport config.Transport, options ...Option) (*Runner, error) {
	if mcpServer == nil {
		return nil, ErrNilServer
	}
	if transport.Listen == "" {
		return nil, fmt.Errorf("%w: listen address", ErrMissingSetting)
	}
	if transport.Path == "" {
		transport.Path = config.DefaultPath
	}

	r := &Runner{
		logger:  slog.Default().WithGroup("http.Runner"),
		address: transport.Listen,
		path:    transport.Path,
	}
	for _, option := range options {
		option(r)
	}

	handler := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return mcpServer },
		&mcp.StreamableHTTPOptions{Stateless: r.stateless},
	)

	routes, err := buildRoutes(handler, r.path, r.logger)
	if err != nil {
		return nil, err
	}

	server, err := httpserver.NewHTTPServer(
		"mcp",
		r.address,
		routes,
		timeoutsFromConfig(transport),
		r.logger.WithGroup("httpserver"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server: %w", err)
	}
	r.server = server
	return r, nil
}

// timeoutsFromConfig falls back to the package defaults for unset timeouts.
func timeoutsFromConfig(transport config.Transport) httpserver.HTTPTimeoutOptions {
	return httpserver.HTTPTimeoutOptions{
		ReadTimeout:  transport.ReadTimeout.OrDefault(config.DefaultReadTimeout),
		WriteTimeout: transport.WriteTimeout.OrDefault(config.DefaultWriteTimeout),
		IdleTimeout:  transport.IdleTimeout.OrDefault(config.DefaultIdleTimeout),
		DrainTimeout: transport.DrainTimeout.OrDefault(config.DefaultDrainTimeout),
	}
}

// String returns a unique identifier for this runner
func (r *Runner) String() string {
	return fmt.Sprintf("HTTPRunner[%s%s]", r.address, r.path)
}

// Run serves until ctx is canceled or Stop is called
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("Serving MCP over HTTP", "address", r.address, "path", r.path)
	return r.server.Run(ctx)
}

// Stop stops the HTTP server
func (r *Runner) Stop() {
	r.logger.Debug("Stopping HTTP runner")
	r.server.Stop()
}
