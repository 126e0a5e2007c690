// Package ui describes presentational intent for an MCP host. Nodes carry no behavior:
// the host decides how a card, heading, bullet list or button is drawn.
package ui

import "slices"

// Kind tags the variant of a Node.
type Kind string

const (
	KindCard       Kind = "card"
	KindHeading    Kind = "heading"
	KindBulletList Kind = "bulletList"
	KindButton     Kind = "button"
)

// Kinds lists every node kind in declaration order.
var Kinds = []Kind{KindCard, KindHeading, KindBulletList, KindButton}

// Valid reports whether k is a known node kind.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds, k)
}

func (k Kind) String() string {
	return string(k)
}

// Node is one element of a UI description tree.
type Node struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`

	// Detail is secondary template text shown under the main text.
	Detail string `json:"detail,omitempty"`

	// Items holds the entries of a bulletList.
	Items []string `json:"items,omitempty"`

	// Action names the tool a button asks the host to invoke.
	Action string `json:"action,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

// Heading creates a heading node wrapping children.
func Heading(text string, children ...*Node) *Node {
	return &Node{Kind: KindHeading, Text: text, Children: children}
}

// Card creates a card node.
func Card(text, detail string, children ...*Node) *Node {
	return &Node{Kind: KindCard, Text: text, Detail: detail, Children: children}
}

// BulletList creates a bullet list; the items slice is copied.
func BulletList(text string, items ...string) *Node {
	return &Node{Kind: KindBulletList, Text: text, Items: slices.Clone(items)}
}

// Button creates a button that asks the host to call action.
func Button(text, action string) *Node {
	return &Node{Kind: KindButton, Text: text, Action: action}
}

// Walk visits n and its descendants depth-first. Returning false stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns every node of the given kind in depth-first order.
func (n *Node) Find(kind Kind) []*Node {
	var found []*Node
	n.Walk(func(node *Node) bool {
		if node.Kind == kind {
			found = append(found, node)
		}
		return true
	})
	return found
}

// Count returns the number of nodes of the given kind.
func (n *Node) Count(kind Kind) int {
	return len(n.Find(kind))
}
