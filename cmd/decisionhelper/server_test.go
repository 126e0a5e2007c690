package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/atlanticdynamic/decision-helper/internal/config"
	"github.com/atlanticdynamic/decision-helper/internal/config/errz"
	"github.com/atlanticdynamic/decision-helper/internal/config/logs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// loadWithArgs runs the server command with its action replaced by config loading
func loadWithArgs(t *testing.T, args ...string) (*config.Config, error) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
	var cfg *config.Config

	app := newApp()
	for _, cmd := range app.Commands {
		if cmd.Name == "server" {
			cmd.Action = func(_ context.Context, cmd *cli.Command) error {
				var err error
				cfg, err = loadServerConfig(cmd)
				return err
			}
		}
	}
	app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

	err := app.Run(t.Context(), append([]string{"decisionhelper"}, args...))
	return cfg, err
}

func TestLoadServerConfig(t *testing.T) {
	t.Run("defaults to stdio", func(t *testing.T) {
		cfg, err := loadWithArgs(t, "server")
		require.NoError(t, err)
		assert.Equal(t, config.TransportStdio, cfg.Transport.Type)
		assert.Equal(t, logs.LevelInfo, cfg.Logging.Level)
	})

	t.Run("listen implies http", func(t *testing.T) {
		cfg, err := loadWithArgs(t, "server", "--listen", "127.0.0.1:9123")
		require.NoError(t, err)
		assert.Equal(t, config.TransportHTTP, cfg.Transport.Type)
		assert.Equal(t, "127.0.0.1:9123", cfg.Transport.Listen)
	})

	t.Run("transport flag", func(t *testing.T) {
		cfg, err := loadWithArgs(t, "server", "--transport", "HTTP")
		require.NoError(t, err)
		assert.Equal(t, config.TransportHTTP, cfg.Transport.Type)
		assert.Equal(t, config.DefaultListen, cfg.Transport.Listen)
	})

	t.Run("file values with flag overrides", func(t *testing.T) {
		path := writeConfig(t, httpConfig+"\n[logging]\nlevel = \"warn\"\n")

		cfg, err := loadWithArgs(t, "--log-level", "debug", "server", "--config", path, "--transport", "stdio")
		require.NoError(t, err)
		assert.Equal(t, config.TransportStdio, cfg.Transport.Type)
		assert.Equal(t, "/rpc", cfg.Transport.Path)
		assert.Equal(t, logs.LevelDebug, cfg.Logging.Level)
		assert.Equal(t, []string{"Cost", "Commute"}, cfg.Priorities.Known)
	})

	t.Run("file level kept without flag", func(t *testing.T) {
		path := writeConfig(t, httpConfig+"\n[logging]\nlevel = \"warn\"\n")

		cfg, err := loadWithArgs(t, "server", "-c", path)
		require.NoError(t, err)
		assert.Equal(t, logs.LevelWarn, cfg.Logging.Level)
	})

	t.Run("invalid transport", func(t *testing.T) {
		_, err := loadWithArgs(t, "server", "--transport", "smoke-signal")
		require.ErrorIs(t, err, errz.ErrInvalidTransportType)
	})

	t.Run("stdio with stdout logging", func(t *testing.T) {
		path := writeConfig(t, "[logging]\noutput = \"stdout\"\n[transport]\ntype = \"http\"\n")

		_, err := loadWithArgs(t, "server", "--config", path, "--transport", "stdio")
		require.ErrorIs(t, err, errz.ErrOutputConflict)
	})

	t.Run("invalid listen", func(t *testing.T) {
		_, err := loadWithArgs(t, "server", "--listen", "not-an-address")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}

func TestServerCmd_InvalidConfigExits(t *testing.T) {
	_, err := runApp(t, "server", "--transport", "smoke-signal")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
}
