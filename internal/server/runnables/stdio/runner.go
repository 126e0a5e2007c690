// Package stdio runs the MCP server over the process stdin and stdout as a supervised runnable.
package stdio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/atlanticdynamic/decision-helper/internal/server/finitestate"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Interface guards
var (
	_ supervisor.Runnable  = (*Runner)(nil)
	_ supervisor.Stateable = (*Runner)(nil)
)

// Runner serves one MCP session over a persistent transport, stdio unless overridden.
type Runner struct {
	server    *mcp.Server
	transport mcp.Transport
	fsm       finitestate.Machine
	logger    *slog.Logger

	// onDisconnect runs when the host ends the session without Stop being called
	onDisconnect func()

	mu      sync.Mutex
	cancel  context.CancelFunc
	stopped bool
}

// NewRunner creates a stdio runner for server.
func NewRunner(server *mcp.Server, opts ...Option) (*Runner, error) {
	if server == nil {
		return nil, ErrNilServer
	}

	r := &Runner{
		server:    server,
		transport: &mcp.StdioTransport{},
		logger:    slog.Default().WithGroup("stdio.Runner"),
	}
	for _, opt := range opts {
		opt(r)
	}

	machine, err := finitestate.New(r.logger.Handler())
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}
	r.fsm = machine
	return r, nil
}

// String returns a unique identifier for this runner
func (r *Runner) String() string {
	return "StdioRunner"
}

// Run serves the session until the host disconnects or ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.fsm.Transition(finitestate.StatusBooting); err != nil {
		return fmt.Errorf("%w: %w", ErrStateTransition, err)
	}

	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		r.logger.Debug("Stop requested before the session started")
		return r.finish()
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.mu.Unlock()
	defer cancel()

	if err := r.fsm.Transition(finitestate.StatusRunning); err != nil {
		return fmt.Errorf("%w: %w", ErrStateTransition, err)
	}
	r.logger.Info("Serving MCP over stdio")

	err := r.server.Run(runCtx, r.transport)
	stopped := runCtx.Err() != nil

	if err != nil && !(stopped && errors.Is(err, context.Canceled)) {
		r.logger.Error("MCP session failed", "error", err)
		if tErr := r.fsm.Transition(finitestate.StatusError); tErr != nil {
			r.logger.Warn("Failed to record error state", "error", tErr)
		}
		return fmt.Errorf("%w: %w", ErrSessionFailed, err)
	}

	if !stopped {
		r.logger.Info("MCP host disconnected")
		if r.onDisconnect != nil {
			r.onDisconnect()
		}
	}
	return r.finish()
}

func (r *Runner) finish() error {
	if err := r.fsm.Transition(finitestate.StatusStopping); err != nil {
		return fmt.Errorf("%w: %w", ErrStateTransition, err)
	}
	if err := r.fsm.Transition(finitestate.StatusStopped); err != nil {
		return fmt.Errorf("%w: %w", ErrStateTransition, err)
	}
	return nil
}

// Stop ends the session. Called before Run, it makes Run return without serving.
func (r *Runner) Stop() {
	r.mu.Lock()
	r.stopped = true
	cancel := r.cancel
	r.mu.Unlock()

	if cancel != nil {
		r.logger.Debug("Stopping stdio runner")
		cancel()
	}
}
