package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/atlanticdynamic/decision-helper/internal/config"
	accesslog "github.com/atlanticdynamic/decision-helper/internal/server/runnables/listeners/http/middleware/logger"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// buildRoutes returns the health route and the MCP route, both behind the access log.
func buildRoutes(mcpHandler http.Handler, path string, logger *slog.Logger) ([]httpserver.Route, error) {
	access := accesslog.NewAccessLogger(logger, config.HealthPath)

	health, err := httpserver.NewRouteFromHandlerFunc("health", config.HealthPath, healthHandler, access.Middleware())
	if err != nil {
		return nil, fmt.Errorf("%w: health: %w", ErrBuildRoutes, err)
	}

	mcpRoute, err := httpserver.NewRouteFromHandlerFunc("mcp", path, mcpHandler.ServeHTTP, access.Middleware())
	if err != nil {
		return nil, fmt.Errorf("%w: mcp: %w", ErrBuildRoutes, err)
	}

	return []httpserver.Route{*health, *mcpRoute}, nil
}

// healthHandler reports liveness. It does not touch the MCP server.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
