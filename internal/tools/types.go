package tools

import "github.com/atlanticdynamic/decision-helper/internal/decision"

// StartDecisionInput is the argument object of start_decision.
type StartDecisionInput struct {
	Title   string `json:"title" jsonschema:"the decision question, e.g. Should I move to London or Berlin?"`
	OptionA string `json:"optionA" jsonschema:"first option to consider, e.g. London"`
	OptionB string `json:"optionB" jsonschema:"second option to consider, e.g. Berlin"`
}

// StartDecisionOutput wraps the decision record so it can be passed to
// summarize_decision exactly as returned.
type StartDecisionOutput struct {
	Decision decision.Record `json:"decision" jsonschema:"the decision record; pass it back unchanged to summarize_decision"`
	Message  string          `json:"message"`
}

// SetPrioritiesInput is the argument object of set_priorities.
type SetPrioritiesInput struct {
	Priorities []string `json:"priorities" jsonschema:"1 to 3 things that matter most, most important first"`
	DecisionID string   `json:"decisionId,omitempty" jsonschema:"id returned by start_decision"`
}

// SetPrioritiesOutput is the normalized priority list.
type SetPrioritiesOutput struct {
	DecisionID string   `json:"decisionId,omitempty"`
	Priorities []string `json:"priorities"`
	Message    string   `json:"message"`
}

// SummarizeDecisionInput re-supplies everything the summary needs.
type SummarizeDecisionInput struct {
	Decision   decision.Record `json:"decision" jsonschema:"the decision returned by start_decision"`
	Priorities []string        `json:"priorities,omitempty" jsonschema:"the priorities returned by set_priorities"`
}
