package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// loggingMiddleware logs every request the server receives, with the tool name for calls.
func loggingMiddleware(logger *slog.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			start := time.Now()
			attrs := []any{"method", method}
			if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil {
				attrs = append(attrs, "tool", call.Params.Name)
			}

			result, err := next(ctx, method, req)
			attrs = append(attrs, "duration", time.Since(start))

			switch {
			case err != nil:
				logger.WarnContext(ctx, "MCP request failed", append(attrs, "error", err)...)
			case isToolError(result):
				logger.InfoContext(ctx, "Tool call rejected", attrs...)
			default:
				logger.DebugContext(ctx, "MCP request handled", attrs...)
			}
			return result, err
		}
	}
}

func isToolError(result mcp.Result) bool {
	res, ok := result.(*mcp.CallToolResult)
	return ok && res != nil && res.IsError
}
