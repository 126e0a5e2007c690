package ui

import (
	"fmt"

	"github.com/atlanticdynamic/decision-helper/internal/fancy"
	"github.com/charmbracelet/lipgloss/tree"
)

// ToTree renders the node and its descendants as a styled terminal tree.
func (n *Node) ToTree() *tree.Tree {
	t := fancy.Tree()
	t.Root(n.label())
	n.addChildren(t)
	return t
}

// String renders the tree for terminal output.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	return n.ToTree().String()
}

func (n *Node) addChildren(t *tree.Tree) {
	for _, item := range n.Items {
		t.Child(fancy.InfoStyle.Render("• " + item))
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		if len(child.Children) == 0 && len(child.Items) == 0 {
			t.Child(child.label())
			continue
		}
		branch := tree.New().Root(child.label())
		child.addChildren(branch)
		t.Child(branch)
	}
}

func (n *Node) label() string {
	switch n.Kind {
	case KindHeading:
		return fancy.HeadingText(n.Text)
	case KindCard:
		if n.Detail != "" {
			return fmt.Sprintf("%s %s", fancy.CardText(n.Text), fancy.InfoStyle.Render(n.Detail))
		}
		return fancy.CardText(n.Text)
	case KindBulletList:
		return fancy.ListText(fmt.Sprintf("%s (%d)", n.Text, len(n.Items)))
	case KindButton:
		return fancy.ButtonText(fmt.Sprintf("[ %s ]", n.Text))
	default:
		return fancy.ErrorText(fmt.Sprintf("%s: %s", n.Kind, n.Text))
	}
}
