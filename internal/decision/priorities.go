package decision

import (
	"fmt"
	"strings"
)

// MaxPriorities is the largest number of priorities a decision may carry.
const MaxPriorities = 3

// DefaultKnownPriorities are the canonical spellings offered to the host model.
var DefaultKnownPriorities = []string{
	"Cost",
	"Career growth",
	"Lifestyle",
	"Work-life balance",
	"Stability",
	"Flexibility",
}

// Priorities is an ordered list of at most MaxPriorities distinct labels.
type Priorities []string

// Canonicalizer maps user-typed priority labels onto known spellings.
type Canonicalizer struct {
	known map[string]string
}

// NewCanonicalizer builds a Canonicalizer from the canonical labels. Blank labels are ignored.
func NewCanonicalizer(known []string) *Canonicalizer {
	c := &Canonicalizer{known: make(map[string]string, len(known))}
	for _, label := range known {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		if _, exists := c.known[key]; !exists {
			c.known[key] = label
		}
	}
	return c
}

// Canonical returns the known spelling of label, or label unchanged when it is unknown.
func (c *Canonicalizer) Canonical(label string) string {
	if c == nil {
		return label
	}
	if known, ok := c.known[strings.ToLower(label)]; ok {
		return known
	}
	return label
}

// Known returns the number of canonical labels.
func (c *Canonicalizer) Known() int {
	if c == nil {
		return 0
	}
	return len(c.known)
}

// SetPriorities normalizes raw priority labels without canonical spellings.
func SetPriorities(raw []string) (Priorities, error) {
	return (*Canonicalizer)(nil).SetPriorities(raw)
}

// SetPriorities trims the labels, drops empty ones and collapses case-insensitive
// duplicates keeping the first occurrence. More than MaxPriorities raw entries is rejected.
func (c *Canonicalizer) SetPriorities(raw []string) (Priorities, error) {
	if len(raw) > MaxPriorities {
		return nil, newValidationError(
			"priorities",
			fmt.Errorf("%w (got %d)", ErrTooManyPriorities, len(raw)),
		)
	}

	out := make(Priorities, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		p = c.Canonical(p)
		key := strings.ToLower(p)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}

// String joins the labels for display, or returns fallback for an empty list.
func (p Priorities) String() string {
	return p.Join("general factors")
}

// Join returns the labels separated by commas, or fallback when there are none.
func (p Priorities) Join(fallback string) string {
	if len(p) == 0 {
		return fallback
	}
	return strings.Join(p, ", ")
}
