package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/decision-helper/internal/decision"
	"github.com/atlanticdynamic/decision-helper/internal/ui"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StartDecision handles start_decision.
func (ts *Toolset) StartDecision(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in StartDecisionInput,
) (*mcp.CallToolResult, StartDecisionOutput, error) {
	rec, err := decision.Start(in.Title, in.OptionA, in.OptionB)
	if err != nil {
		ts.logger.DebugContext(ctx, "Rejected decision", "error", err)
		return nil, StartDecisionOutput{}, err
	}

	id, err := ts.newID()
	if err != nil {
		return nil, StartDecisionOutput{}, fmt.Errorf("%w: %w", ErrIDGeneration, err)
	}
	rec = rec.WithID(id)

	ts.logger.DebugContext(ctx, "Decision started", "id", rec.ID, "title", rec.Title)
	return nil, StartDecisionOutput{
		Decision: rec,
		Message:  fmt.Sprintf(
			"Decision %q created. Next, ask which priorities matter most (up to %d).",
			rec.Title, decision.MaxPriorities,
		),
	}, nil
}

// SetPriorities handles set_priorities.
func (ts *Toolset) SetPriorities(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in SetPrioritiesInput,
) (*mcp.CallToolResult, SetPrioritiesOutput, error) {
	decisionID := strings.TrimSpace(in.DecisionID)
	if err := decision.ValidateID("decisionId", decisionID); err != nil {
		return nil, SetPrioritiesOutput{}, err
	}

	prios, err := ts.canonical.SetPriorities(in.Priorities)
	if err != nil {
		ts.logger.DebugContext(ctx, "Rejected priorities", "error", err, "count", len(in.Priorities))
		return nil, SetPrioritiesOutput{}, err
	}

	ts.logger.DebugContext(ctx, "Priorities set", "decisionId", decisionID, "priorities", []string(prios))
	return nil, SetPrioritiesOutput{
		DecisionID: decisionID,
		Priorities: prios,
		Message:    "Got it! Your priorities are: " + prios.String(),
	}, nil
}

// SummarizeDecision handles summarize_decision.
func (ts *Toolset) SummarizeDecision(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	in SummarizeDecisionInput,
) (*mcp.CallToolResult, *decision.Comparison, error) {
	cmp, err := ts.canonical.Summarize(in.Decision, in.Priorities)
	if err != nil {
		ts.logger.DebugContext(ctx, "Rejected summary input", "error", err)
		return nil, nil, err
	}

	ts.logger.DebugContext(ctx, "Decision summarized",
		"id", cmp.Decision.ID,
		"priorities", len(cmp.Priorities),
		"cards", cmp.UIDescription.Count(ui.KindCard),
	)
	return nil, cmp, nil
}
