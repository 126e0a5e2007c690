package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/decision-helper/internal/decision"
	"github.com/atlanticdynamic/decision-helper/internal/fancy"
	"github.com/atlanticdynamic/decision-helper/internal/tools"
	"github.com/urfave/cli/v3"
)

func newPreviewCmd() *cli.Command {
	return &cli.Command{
		Name:  "preview",
		Usage: "Run the three tools locally and render the resulting UI description",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "title",
				Usage:    "Decision title",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "option-a",
				Aliases:  []string{"a"},
				Usage:    "First option",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "option-b",
				Aliases:  []string{"b"},
				Usage:    "Second option",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:    "priority",
				Aliases: []string{"p"},
				Usage:   "Priority, most important first (repeat up to 3 times)",
			},
		},
		Action: previewAction,
	}
}

func previewAction(ctx context.Context, cmd *cli.Command) error {
	toolset := tools.New(tools.WithLogHandler(slog.Default().Handler()))

	cmp, err := runPreview(ctx, toolset, tools.StartDecisionInput{
		Title:   cmd.String("title"),
		OptionA: cmd.String("option-a"),
		OptionB: cmd.String("option-b"),
	}, cmd.StringSlice("priority"))
	if err != nil {
		return cli.Exit(fancy.ErrorText(err.Error()), 1)
	}

	out := cmd.Root().Writer
	if _, err := fmt.Fprintln(out, cmp.UIDescription); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "\n%s\n%s\n", cmp.TradeOffs, cmp.WhatThisMeans)
	return err
}

// runPreview chains start_decision, set_priorities and summarize_decision the way a host would.
func runPreview(
	ctx context.Context,
	toolset *tools.Toolset,
	start tools.StartDecisionInput,
	priorities []string,
) (*decision.Comparison, error) {
	_, started, err := toolset.StartDecision(ctx, nil, start)
	if err != nil {
		return nil, err
	}

	_, prios, err := toolset.SetPriorities(ctx, nil, tools.SetPrioritiesInput{
		Priorities: priorities,
		DecisionID: started.Decision.ID,
	})
	if err != nil {
		return nil, err
	}

	_, cmp, err := toolset.SummarizeDecision(ctx, nil, tools.SummarizeDecisionInput{
		Decision:   started.Decision,
		Priorities: prios.Priorities,
	})
	if err != nil {
		return nil, err
	}
	return cmp, nil
}
