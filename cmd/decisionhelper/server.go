package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/decision-helper/cmd/decisionhelper/server"
	"github.com/atlanticdynamic/decision-helper/internal/config"
	"github.com/atlanticdynamic/decision-helper/internal/config/logs"
	"github.com/atlanticdynamic/decision-helper/internal/logging"
	"github.com/urfave/cli/v3"
)

func newServerCmd() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Serve the decision tools over stdio or streamable HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to TOML configuration file",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:    "transport",
				Usage:   "Transport to serve on (stdio or http)",
				Aliases: []string{"t"},
			},
			&cli.StringFlag{
				Name:    "listen",
				Usage:   "Address for the HTTP transport, e.g. :8080 (implies --transport http)",
				Aliases: []string{"l"},
			},
		},
		Action: serverAction,
	}
}

func serverAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return cli.Exit(err, 1)
	}

	handler, closer, err := logging.NewHandler(cfg.Logging)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer func() { _ = closer.Close() }()

	logger := slog.New(handler)
	slog.SetDefault(logger)
	logger.Debug("Starting server", "transport", cfg.Transport.Type, "name", cfg.Server.Name, "logging", cfg.Logging.String())

	if err := server.Run(ctx, logger, cfg); err != nil {
		return cli.Exit(err, 1)
	}
	return nil
}

// loadServerConfig reads the optional config file, applies flag overrides, then validates.
func loadServerConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.NewDefault()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.NewConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if err := applyOverrides(cfg, cmd); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func applyOverrides(cfg *config.Config, cmd *cli.Command) error {
	if listen := cmd.String("listen"); listen != "" {
		cfg.Transport.Listen = listen
		cfg.Transport.Type = config.TransportHTTP
	}

	if name := cmd.String("transport"); name != "" {
		t, err := config.TransportTypeFromString(name)
		if err != nil {
			return err
		}
		cfg.Transport.Type = t
	}

	if cmd.IsSet("log-level") {
		level, err := logs.LevelFromString(cmd.String("log-level"))
		if err != nil {
			return err
		}
		cfg.Logging.Level = level
	}
	return nil
}
