package ui

import "github.com/google/jsonschema-go/jsonschema"

// NodeDefName is the $defs key under which NodeSchema is published.
const NodeDefName = "uiNode"

// NodeRef points at NodeSchema from a schema whose root carries Defs().
const NodeRef = "#/$defs/" + NodeDefName

// NodeSchema describes a Node. Children refer back to NodeRef, so the schema is only
// resolvable from a root that includes Defs().
func NodeSchema() *jsonschema.Schema {
	kinds := make([]any, 0, len(Kinds))
	for _, k := range Kinds {
		kinds = append(kinds, string(k))
	}

	return &jsonschema.Schema{
		Type:        "object",
		Description: "A presentational node rendered by the host.",
		Properties: map[string]*jsonschema.Schema{
			"kind":   {Type: "string", Enum: kinds},
			"text":   {Type: "string"},
			"detail": {Type: "string"},
			"items": {
				Type:  "array",
				Items: &jsonschema.Schema{Type: "string"},
			},
			"action": {Type: "string", Description: "Tool the host should call when a button is pressed."},
			"children": {
				Type:  "array",
				Items: &jsonschema.Schema{Ref: NodeRef},
			},
		},
		Required: []string{"kind", "text"},
	}
}

// Defs returns the definitions that must accompany any schema using NodeRef.
func Defs() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{NodeDefName: NodeSchema()}
}
