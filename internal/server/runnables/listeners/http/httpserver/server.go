// Package httpserver adapts the go-supervisor HTTP runner to the listener's routes and timeouts.
package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/atlanticdynamic/decision-helper/internal/server/finitestate"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*HTTPServer)(nil)
	_ supervisor.Stateable = (*HTTPServer)(nil)
)

// HTTPTimeoutOptions contains timeout configuration for the HTTP server. Zero values keep
// the go-supervisor defaults.
type HTTPTimeoutOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}

// serverImplementation abstracts the go-supervisor runner so tests can swap it out
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsRunning() bool
	GetStateChan(ctx context.Context) <-chan string
}

// HTTPServer wraps the go-supervisor httpserver.Runner with a fixed route set
type HTTPServer struct {
	name    string
	address string
	server  serverImplementation

	logger   *slog.Logger
	routes   []httpserver.Route
	timeouts HTTPTimeoutOptions
}

// NewHTTPServer creates a new HTTP server with the specified configuration
func NewHTTPServer(
	name, address string,
	routes []httpserver.Route,
	timeouts HTTPTimeoutOptions,
	logger *slog.Logger,
) (*HTTPServer, error) {
	if logger == nil {
		logger = slog.Default().WithGroup("httpserver").With("name", name)
	}

	server := &HTTPServer{
		name:     name,
		address:  address,
		routes:   slices.Clone(routes),
		timeouts: timeouts,
		logger:   logger,
	}

	runner, err := httpserver.NewRunner(httpserver.WithConfigCallback(server.buildConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server runner: %w", err)
	}
	server.server = runner

	return server, nil
}

// buildConfig is the go-supervisor config callback
func (s *HTTPServer) buildConfig() (*httpserver.Config, error) {
	var options []httpserver.ConfigOption
	if s.timeouts.ReadTimeout > 0 {
		options = append(options, httpserver.WithReadTimeout(s.timeouts.ReadTimeout))
	}
	if s.timeouts.WriteTimeout > 0 {
		options = append(options, httpserver.WithWriteTimeout(s.timeouts.WriteTimeout))
	}
	if s.timeouts.IdleTimeout > 0 {
		options = append(options, httpserver.WithIdleTimeout(s.timeouts.IdleTimeout))
	}
	if s.timeouts.DrainTimeout > 0 {
		options = append(options, httpserver.WithDrainTimeout(s.timeouts.DrainTimeout))
	}

	config, err := httpserver.NewConfig(s.address, slices.Clone(s.routes), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
	}
	return config, nil
}

// String returns a unique identifier for this server
func (s *HTTPServer) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.name)
}

// Run starts the HTTP server
func (s *HTTPServer) Run(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", "address", s.address, "routes", len(s.routes))
	return s.server.Run(ctx)
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	s.logger.Info("Stopping HTTP server", "address", s.address)
	s.server.Stop()
}

// GetState returns the current state of the server
func (s *HTTPServer) GetState() string {
	if s.server == nil {
		return finitestate.StatusUnknown
	}
	return s.server.GetState()
}

// IsRunning returns whether the server is running
func (s *HTTPServer) IsRunning() bool {
	if s.server == nil {
		return false
	}
	return s.server.IsRunning()
}

// GetStateChan returns a channel that emits state changes
func (s *HTTPServer) GetStateChan(ctx context.Context) <-chan string {
	if s.server == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return s.server.GetStateChan(ctx)
}

// Name returns the name of this HTTP server
func (s *HTTPServer) Name() string {
	return s.name
}

// Address returns the address this server listens on
func (s *HTTPServer) Address() string {
	return s.address
}

// Routes returns a copy of the served routes
func (s *HTTPServer) Routes() []httpserver.Route {
	return slices.Clone(s.routes)
}
