package ui

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind       = errors.New("unknown node kind")
	ErrNilChild          = errors.New("nil child node")
	ErrItemsOnNonList    = errors.New("items are only allowed on bulletList nodes")
	ErrActionOnNonButton = errors.New("action is only allowed on button nodes")
	ErrLeafWithChildren  = errors.New("node kind cannot have children")
)

// Validate checks that the tree only uses known kinds and kind-specific fields.
func (n *Node) Validate() error {
	return n.validate("root")
}

func (n *Node) validate(path string) error {
	var errs []error

	if !n.Kind.Valid() {
		errs = append(errs, fmt.Errorf("%s: %w: %q", path, ErrUnknownKind, n.Kind))
	}
	if len(n.Items) > 0 && n.Kind != KindBulletList {
		errs = append(errs, fmt.Errorf("%s: %w", path, ErrItemsOnNonList))
	}
	if n.Action != "" && n.Kind != KindButton {
		errs = append(errs, fmt.Errorf("%s: %w", path, ErrActionOnNonButton))
	}
	if len(n.Children) > 0 && (n.Kind == KindBulletList || n.Kind == KindButton) {
		errs = append(errs, fmt.Errorf("%s: %w: %s", path, ErrLeafWithChildren, n.Kind))
	}

	for i, child := range n.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		if child == nil {
			errs = append(errs, fmt.Errorf("%s: %w", childPath, ErrNilChild))
			continue
		}
		if err := child.validate(childPath); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
