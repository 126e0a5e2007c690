//go:build e2e

package server

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	serverCmd "github.com/atlanticdynamic/decision-helper/cmd/decisionhelper/server"
	"github.com/atlanticdynamic/decision-helper/examples"
	"github.com/atlanticdynamic/decision-helper/internal/config"
	"github.com/atlanticdynamic/decision-helper/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadExampleHTTPConfig loads an example config and moves its listener to a free port
func loadExampleHTTPConfig(t *testing.T, name string) *config.Config {
	t.Helper()
	data, err := examples.Config(name)
	require.NoError(t, err, "Failed to read example config %s", name)

	cfg, err := config.NewConfigFromBytes(data)
	require.NoError(t, err, "Failed to load example config %s", name)

	cfg.Transport.Type = config.TransportHTTP
	cfg.Transport.Listen = testutil.GetRandomListeningPort(t)
	return cfg
}

// runServer starts the server in the background and returns a function that stops it.
func runServer(t *testing.T, ctx context.Context, cfg *config.Config) func() {
	t.Helper()
	var logBuf testutil.ThreadSafeBuffer
	logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := context.WithCancel(ctx)
	errCh := make(chan error, 1)
	go func() {
		errCh <- serverCmd.Run(ctx, logger, cfg)
	}()

	select {
	case err := <-errCh:
		cancel()
		require.NoError(t, err, "server exited during startup")
	case <-time.After(100 * time.Millisecond):
	}

	return func() {
		t.Log("Shutting down server...")
		cancel()

		select {
		case err := <-errCh:
			assert.NoError(t, err, "server shutdown")
		case <-time.After(5 * time.Second):
			t.Error("server shutdown timed out")
		}
		t.Logf("Server logs:\n%s", logBuf.String())
	}
}

// baseURL returns the http URL for a listen address such as "localhost:1234"
func baseURL(cfg *config.Config) string {
	return testutil.HTTPURL(cfg.Transport.Listen, "")
}

// waitForHTTPEndpoint retries url until it answers 200 OK or the timeout expires
func waitForHTTPEndpoint(t *testing.T, url string, timeout, retryInterval time.Duration) bool {
	t.Helper()
	httpClient := &http.Client{Timeout: 2 * time.Second}

	return assert.Eventually(t, func() bool {
		resp, err := httpClient.Get(url)
		if err != nil {
			t.Logf("Request failed: %v", err)
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		return resp.StatusCode == http.StatusOK
	}, timeout, retryInterval, "Endpoint never became available: %s", url)
}
