package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/atlanticdynamic/decision-helper/internal/config"
	"github.com/atlanticdynamic/decision-helper/internal/fancy"
	"github.com/urfave/cli/v3"
)

func newValidateCmd() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"lint"},
		Usage:   "Validate a configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "Show detailed tree view of the validated configuration",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration file",
			},
		},
		Suggest: true,
		Action:  validateAction,
	}
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf(
				"config file path required (use the --config flag, or provide the config file as positional argument)",
			)
		}
		configPath = cmd.Args().Get(0)
	}

	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	out := cmd.Root().Writer
	if _, err := fmt.Fprintln(out, fancy.ValidText(fmt.Sprintf("Configuration file %s is valid", configPath))); err != nil {
		return err
	}

	if cmd.Bool("tree") {
		_, err = fmt.Fprintln(out, cfg)
		return err
	}
	return writeConfigSummary(out, configPath, cfg)
}

// writeConfigSummary prints a short summary of the configuration
func writeConfigSummary(w io.Writer, path string, cfg *config.Config) error {
	var summary strings.Builder

	summary.WriteString("\nConfig Summary:\n")
	fmt.Fprintf(&summary, "- Path: %s\n", path)
	fmt.Fprintf(&summary, "- Version: %s\n", cfg.Version)
	fmt.Fprintf(&summary, "- Transport: %s\n", cfg.Transport.Type)
	if cfg.Transport.Type == config.TransportHTTP {
		fmt.Fprintf(&summary, "- Endpoint: %s%s\n", cfg.Transport.Listen, cfg.Transport.Path)
	}
	fmt.Fprintf(&summary, "- Known Priorities: %d\n", len(cfg.Priorities.Known))
	summary.WriteString("\nUse --tree for a more detailed view of the config.\n")

	_, err := io.WriteString(w, summary.String())
	return err
}
