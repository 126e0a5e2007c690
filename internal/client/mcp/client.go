// Package mcp is a small layer over the MCP SDK client used by the CLI.
package mcp

import (
	"context"
	"fmt"
	"net/http"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Client opens MCP sessions.
type Client interface {
	// Connect establishes a new MCP session with the given transport
	Connect(ctx context.Context, transport Transport) (Session, error)
}

// Session is an open MCP session.
type Session interface {
	// CallTool invokes a tool with the given parameters
	CallTool(ctx context.Context, params *CallToolParams) (*CallToolResult, error)

	// ListTools returns all available tools from the server
	ListTools(ctx context.Context) ([]Tool, error)

	// Close terminates the MCP session
	Close() error
}

// Transport carries an SDK transport.
type Transport interface {
	Underlying() any
}

// CallToolParams names a tool and its arguments
type CallToolParams struct {
	Name      string
	Arguments map[string]any
}

// CallToolResult is the outcome of a tool call
type CallToolResult struct {
	Text       []string
	Structured any
	IsError    bool
}

// Tool describes a tool offered by the server
type Tool struct {
	Name        string
	Title       string
	Description string
	ReadOnly    bool
}

// Implementation identifies the client to the server
type Implementation struct {
	Name    string
	Version string
}

type client struct {
	mcpClient *mcpsdk.Client
}

type session struct {
	mcpSession *mcpsdk.ClientSession
}

type transport struct {
	underlying mcpsdk.Transport
}

// NewClient creates a client that identifies itself with impl
func NewClient(impl *Implementation) Client {
	mcpImpl := &mcpsdk.Implementation{Name: "decisionhelper-client", Version: "dev"}
	if impl != nil {
		mcpImpl.Name = impl.Name
		mcpImpl.Version = impl.Version
	}
	return &client{mcpClient: mcpsdk.NewClient(mcpImpl, nil)}
}

// NewStreamableTransport creates a streamable HTTP transport for endpoint
func NewStreamableTransport(endpoint string, httpClient *http.Client) Transport {
	return &transport{underlying: &mcpsdk.StreamableClientTransport{
		Endpoint:   endpoint,
		HTTPClient: httpClient,
	}}
}

// NewTransport wraps an existing SDK transport, such as one half of an in-memory pair
func NewTransport(t mcpsdk.Transport) Transport {
	return &transport{underlying: t}
}

func (c *client) Connect(ctx context.Context, t Transport) (Session, error) {
	if t == nil {
		return nil, ErrInvalidTransport
	}
	mcpTransport, ok := t.Underlying().(mcpsdk.Transport)
	if !ok || mcpTransport == nil {
		return nil, ErrInvalidTransport
	}

	mcpSession, err := c.mcpClient.Connect(ctx, mcpTransport, nil)
	if err != nil {
		return nil, err
	}
	return &session{mcpSession: mcpSession}, nil
}

func (s *session) CallTool(ctx context.Context, params *CallToolParams) (*CallToolResult, error) {
	if params == nil || params.Name == "" {
		return nil, ErrMissingToolName
	}

	result, err := s.mcpSession.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      params.Name,
		Arguments: params.Arguments,
	})
	if err != nil {
		return nil, err
	}

	out := &CallToolResult{
		Structured: result.StructuredContent,
		IsError:    result.IsError,
	}
	for _, content := range result.Content {
		text, ok := content.(*mcpsdk.TextContent)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedContent, content)
		}
		out.Text = append(out.Text, text.Text)
	}
	return out, nil
}

func (s *session) ListTools(ctx context.Context) ([]Tool, error) {
	result, err := s.mcpSession.ListTools(ctx, &mcpsdk.ListToolsParams{})
	if err != nil {
		return nil, err
	}

	tools := make([]Tool, 0, len(result.Tools))
	for _, tool := range result.Tools {
		t := Tool{
			Name:        tool.Name,
			Title:       tool.Title,
			Description: tool.Description,
		}
		if tool.Annotations != nil {
			t.ReadOnly = tool.Annotations.ReadOnlyHint
		}
		tools = append(tools, t)
	}
	return tools, nil
}

func (s *session) Close() error {
	return s.mcpSession.Close()
}

func (t *transport) Underlying() any {
	return t.underlying
}
