// Package client talks to a running decision helper over streamable HTTP.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/atlanticdynamic/decision-helper/internal/client/mcp"
	"github.com/atlanticdynamic/decision-helper/internal/fancy"
)

// Client connects to one MCP endpoint per operation
type Client struct {
	logger     *slog.Logger
	endpoint   string
	httpClient *http.Client
	mcpClient  mcp.Client
}

// Config holds configuration options for creating a Client
type Config struct {
	Logger     *slog.Logger
	Endpoint   string
	HTTPClient *http.Client
	Version    string
}

// New creates a new client instance
func New(cfg Config) (*Client, error) {
	if err := validateEndpoint(cfg.Endpoint); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default().WithGroup("client")
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	return &Client{
		logger:     logger,
		endpoint:   cfg.Endpoint,
		httpClient: cfg.HTTPClient,
		mcpClient:  mcp.NewClient(&mcp.Implementation{Name: "decisionhelper-cli", Version: version}),
	}, nil
}

func validateEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("%w: empty", ErrInvalidEndpoint)
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidEndpoint, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidEndpoint)
	}
	return nil
}

// ListTools returns the tools the server offers
func (c *Client) ListTools(ctx context.Context) ([]mcp.Tool, error) {
	session, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer c.closeSession(session)

	tools, err := session.ListTools(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	return tools, nil
}

// CallTool calls name with rawArgs, a JSON object. A tool-level failure is returned as
// ErrToolFailed together with the result.
func (c *Client) CallTool(ctx context.Context, name, rawArgs string) (*mcp.CallToolResult, error) {
	args, err := ParseArguments(rawArgs)
	if err != nil {
		return nil, err
	}

	session, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer c.closeSession(session)

	c.logger.Debug("Calling tool", "tool", name, "endpoint", c.endpoint)
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", name, err)
	}
	if result.IsError {
		return result, fmt.Errorf("%w: %s", ErrToolFailed, strings.Join(result.Text, "; "))
	}
	return result, nil
}

// ParseArguments decodes a JSON object of tool arguments. Empty input means no arguments.
func ParseArguments(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}, nil
	}

	var args map[string]any
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if args == nil {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidArguments)
	}
	return args, nil
}

// FormatResult renders the structured content as indented JSON, falling back to the text content
func FormatResult(result *mcp.CallToolResult) (string, error) {
	if result == nil {
		return "", nil
	}
	if result.Structured == nil {
		return strings.Join(result.Text, "\n"), nil
	}

	out, err := json.MarshalIndent(result.Structured, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to format result: %w", err)
	}
	return string(out), nil
}

// FormatTools renders the tool list as a tree
func FormatTools(endpoint string, tools []mcp.Tool) string {
	root := fancy.NewComponentTree(fmt.Sprintf("Tools @ %s (%d)", endpoint, len(tools)))
	for _, tool := range tools {
		branch := fancy.BranchNode(tool.Name, tool.Title)
		if tool.Description != "" {
			branch.Child(fancy.TruncateString(tool.Description, 100))
		}
		if tool.ReadOnly {
			branch.Child(fancy.PathText("read-only"))
		}
		root.AddChild(branch)
	}
	return root.String()
}

func (c *Client) connect(ctx context.Context) (mcp.Session, error) {
	session, err := c.mcpClient.Connect(ctx, mcp.NewStreamableTransport(c.endpoint, c.httpClient))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	return session, nil
}

func (c *Client) closeSession(session mcp.Session) {
	if err := session.Close(); err != nil {
		c.logger.Warn("Failed to close MCP session", "error", err)
	}
}
