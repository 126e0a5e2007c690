// Package tools exposes the decision helper operations as MCP tools.
package tools

import (
	"log/slog"

	"github.com/atlanticdynamic/decision-helper/internal/decision"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names as seen by the host.
const (
	StartDecision     = "start_decision"
	SetPriorities     = "set_priorities"
	SummarizeDecision = "summarize_decision"
)

// Names lists the registered tools in call order.
var Names = []string{StartDecision, SetPriorities, SummarizeDecision}

// DefaultInstructions is sent to the host when a session is initialized.
const DefaultInstructions = `Help the user decide between two options.
1. Call start_decision with the question and both options.
2. Ask what matters most, then call set_priorities with at most 3 priorities.
3. Call summarize_decision with the decision object and the priorities returned earlier.
The server does not remember anything between calls: always pass back what it returned.
The summary contains placeholders only; you provide the actual reasoning.`

// Toolset holds the dependencies shared by the tool handlers. It has no mutable state,
// so handlers may run concurrently.
type Toolset struct {
	logger    *slog.Logger
	canonical *decision.Canonicalizer
	newID     func() (string, error)
}

// New creates a Toolset.
func New(opts ...Option) *Toolset {
	ts := &Toolset{
		logger:    slog.Default().WithGroup("tools"),
		canonical: decision.NewCanonicalizer(decision.DefaultKnownPriorities),
		newID:     decision.NewID,
	}
	for _, opt := range opts {
		opt(ts)
	}
	ts.logger.Debug("Toolset ready", "knownPriorities", ts.canonical.Known())
	return ts
}

// Register adds every tool to server.
func (ts *Toolset) Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        StartDecision,
		Title:       "Start a decision",
		Description: "Start a new decision comparison between two options. Use this when the user wants to compare two choices.",
		Annotations: readOnly("Start a decision"),
	}, ts.StartDecision)

	mcp.AddTool(server, &mcp.Tool{
		Name:  SetPriorities,
		Title: "Set priorities",
		Description: "Record what matters most for a decision (max 3 priorities). " +
			"Known priorities are Cost, Career growth, Lifestyle, Work-life balance, Stability and Flexibility; others are kept as typed.",
		Annotations: readOnly("Set priorities"),
	}, ts.SetPriorities)

	mcp.AddTool(server, &mcp.Tool{
		Name:  SummarizeDecision,
		Title: "Summarize a decision",
		Description: "Lay out both options side by side with the user's priorities as talking points. " +
			"Returns a UI description for the host to render; the reasoning is up to you.",
		Annotations:  readOnly("Summarize a decision"),
		OutputSchema: comparisonSchema(),
	}, ts.SummarizeDecision)
}

// NewServer creates an MCP server with the toolset registered and call logging enabled.
func NewServer(impl *mcp.Implementation, instructions string, ts *Toolset) *mcp.Server {
	if instructions == "" {
		instructions = DefaultInstructions
	}
	server := mcp.NewServer(impl, &mcp.ServerOptions{Instructions: instructions})
	server.AddReceivingMiddleware(loggingMiddleware(ts.logger))
	ts.Register(server)
	return server
}

func readOnly(title string) *mcp.ToolAnnotations {
	openWorld := false
	return &mcp.ToolAnnotations{
		Title:          title,
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  &openWorld,
	}
}
