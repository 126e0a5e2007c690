package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/atlanticdynamic/decision-helper/internal/client"
	"github.com/urfave/cli/v3"
)

func newCallCmd() *cli.Command {
	return &cli.Command{
		Name:      "call",
		Usage:     "Call a tool on a running HTTP server",
		ArgsUsage: "<tool> [json-arguments|-]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Aliases: []string{"u"},
				Usage:   "MCP endpoint of the server",
				Value:   "http://localhost:8080/mcp",
			},
			&cli.BoolFlag{
				Name:  "list",
				Usage: "List the server's tools instead of calling one",
			},
			&cli.IntFlag{
				Name:    "timeout",
				Usage:   "Timeout for the operation in seconds",
				Aliases: []string{"t"},
				Value:   10,
			},
		},
		Action: callAction,
	}
}

func callAction(ctx context.Context, cmd *cli.Command) error {
	if t := cmd.Int("timeout"); t > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(t)*time.Second)
		defer cancel()
	}

	endpoint := cmd.String("url")
	c, err := client.New(client.Config{
		Logger:   slog.Default(),
		Endpoint: endpoint,
		Version:  Version,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out := cmd.Root().Writer
	if cmd.Bool("list") {
		tools, err := c.ListTools(ctx)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		_, err = fmt.Fprintln(out, client.FormatTools(endpoint, tools))
		return err
	}

	if cmd.Args().Len() < 1 {
		return cli.Exit("tool name required (or use --list)", 1)
	}
	name := cmd.Args().Get(0)

	rawArgs, err := readArguments(cmd.Args().Get(1), cmd.Root().Reader)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	result, callErr := c.CallTool(ctx, name, rawArgs)
	if callErr != nil && !errors.Is(callErr, client.ErrToolFailed) {
		return cli.Exit(callErr.Error(), 1)
	}

	formatted, err := client.FormatResult(result)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	if _, err := fmt.Fprintln(out, formatted); err != nil {
		return err
	}
	if callErr != nil {
		return cli.Exit(callErr.Error(), 2)
	}
	return nil
}

// readArguments returns arg, or the contents of in when arg is "-"
func readArguments(arg string, in io.Reader) (string, error) {
	if arg != "-" {
		return arg, nil
	}
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read arguments: %w", err)
	}
	return string(data), nil
}
