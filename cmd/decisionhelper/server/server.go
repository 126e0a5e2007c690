// Package server assembles the decision helper runnables and runs them under a supervisor.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/decision-helper/internal/config"
	"github.com/atlanticdynamic/decision-helper/internal/config/errz"
	"github.com/atlanticdynamic/decision-helper/internal/server/runnables/listeners/http"
	"github.com/atlanticdynamic/decision-helper/internal/server/runnables/stdio"
	"github.com/atlanticdynamic/decision-helper/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Run serves the decision tools with the transport named in cfg until ctx is canceled, a
// signal arrives, or, for stdio, the host closes the stream.
func Run(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logHandler := logger.Handler()

	runnable, err := NewRunnable(cfg, logHandler, cancel)
	if err != nil {
		return err
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logHandler),
		supervisor.WithRunnables(runnable),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}

// NewMCPServer creates the MCP server with the tools configured by cfg.
func NewMCPServer(cfg *config.Config, logHandler slog.Handler) *mcp.Server {
	toolset := tools.New(
		tools.WithLogHandler(logHandler),
		tools.WithKnownPriorities(cfg.Priorities.Known),
	)
	impl := &mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}
	return tools.NewServer(impl, cfg.Server.Instructions, toolset)
}

// NewRunnable creates the transport runnable for cfg. onDisconnect is called when a stdio host
// closes its end of the stream.
func NewRunnable(cfg *config.Config, logHandler slog.Handler, onDisconnect func()) (supervisor.Runnable, error) {
	mcpServer := NewMCPServer(cfg, logHandler)

	switch cfg.Transport.Type {
	case config.TransportHTTP:
		runner, err := http.NewRunner(mcpServer, cfg.Transport, http.WithLogHandler(logHandler))
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP listener runner: %w", err)
		}
		return runner, nil
	case config.TransportStdio, "":
		runner, err := stdio.NewRunner(
			mcpServer,
			stdio.WithLogHandler(logHandler),
			stdio.WithOnDisconnect(onDisconnect),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create stdio runner: %w", err)
		}
		return runner, nil
	default:
		return nil, fmt.Errorf("%w: %s", errz.ErrInvalidTransportType, cfg.Transport.Type)
	}
}
