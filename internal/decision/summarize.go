package decision

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/decision-helper/internal/ui"
)

// Fixed labels used in the comparison tree.
const (
	StartAnotherLabel  = "Start another decision"
	StartAnotherAction = "start_decision"
	TalkingPointsLabel = "Trade-offs to weigh"
)

// Comparison is the structured result handed back to the host for rendering.
type Comparison struct {
	Decision      Record     `json:"decision"`
	Priorities    Priorities `json:"priorities"`
	TradeOffs     string     `json:"tradeOffs"`
	WhatThisMeans string     `json:"whatThisMeans"`
	UIDescription *ui.Node   `json:"uiDescription"`
}

// Summarize re-validates a record and its priorities and lays them out side by side.
// The narrative fields are placeholders; the host model supplies the reasoning.
func Summarize(rec Record, priorities []string) (*Comparison, error) {
	return (*Canonicalizer)(nil).Summarize(rec, priorities)
}

// Summarize is like the package-level Summarize but canonicalizes priority spellings.
func (c *Canonicalizer) Summarize(rec Record, priorities []string) (*Comparison, error) {
	normalized, recErr := rec.Normalize()
	prios, prioErr := c.SetPriorities(priorities)
	if err := errors.Join(recErr, prioErr); err != nil {
		return nil, err
	}

	children := make([]*ui.Node, 0, 3)
	for _, option := range normalized.Options() {
		children = append(children, ui.Card(
			option,
			fmt.Sprintf("How %s fits: %s", option, prios),
			ui.BulletList(TalkingPointsLabel, prios...),
		))
	}
	children = append(children, ui.Button(StartAnotherLabel, StartAnotherAction))
	tree := ui.Heading(normalized.Title, children...)
	if err := tree.Validate(); err != nil {
		return nil, fmt.Errorf("building ui description: %w", err)
	}

	return &Comparison{
		Decision:   normalized,
		Priorities: prios,
		TradeOffs: fmt.Sprintf(
			"This decision involves trade-offs between %s and %s. Based on your priorities (%s), here are the key considerations.",
			normalized.OptionA, normalized.OptionB, prios,
		),
		WhatThisMeans: "Given what matters most to you, here is what to consider.",
		UIDescription: tree,
	}, nil
}
