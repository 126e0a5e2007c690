package tools

import (
	"github.com/atlanticdynamic/decision-helper/internal/decision"
	"github.com/atlanticdynamic/decision-helper/internal/ui"
	"github.com/google/jsonschema-go/jsonschema"
)

// comparisonSchema is declared by hand because the UI tree is recursive.
func comparisonSchema() *jsonschema.Schema {
	maxPriorities := decision.MaxPriorities
	str := func(desc string) *jsonschema.Schema {
		return &jsonschema.Schema{Type: "string", Description: desc}
	}

	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"decision": {
				Type: "object",
				Properties: map[string]*jsonschema.Schema{
					"id":      str("identifier returned by start_decision"),
					"title":   str(""),
					"optionA": str(""),
					"optionB": str(""),
				},
				Required: []string{"title", "optionA", "optionB"},
			},
			"priorities": {
				Type:     "array",
				Items:    &jsonschema.Schema{Type: "string"},
				MaxItems: &maxPriorities,
			},
			"tradeOffs":     str("template text; fill in the reasoning yourself"),
			"whatThisMeans": str("template text; fill in the conclusion yourself"),
			"uiDescription": {Ref: ui.NodeRef},
		},
		Required: []string{"decision", "priorities", "tradeOffs", "whatThisMeans", "uiDescription"},
		Defs:     ui.Defs(),
	}
}
