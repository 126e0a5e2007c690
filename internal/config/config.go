// Package config loads, validates and renders the decision helper server configuration.
package config

import (
	"slices"
	"time"

	"github.com/atlanticdynamic/decision-helper/internal/config/loader"
	"github.com/atlanticdynamic/decision-helper/internal/config/logs"
	"github.com/atlanticdynamic/decision-helper/internal/decision"
)

// VersionLatest is the current config schema version
const VersionLatest = loader.VersionLatest

// Defaults applied before a config file is decoded
const (
	DefaultServerName   = "Decision Helper"
	DefaultServerVer    = "1.0.0"
	DefaultListen       = ":8080"
	DefaultPath         = "/mcp"
	HealthPath          = "/health"
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultIdleTimeout  = 60 * time.Second
	DefaultDrainTimeout = 5 * time.Second
)

// Config is the root of the server configuration
type Config struct {
	Version    string           `toml:"version"`
	Server     ServerInfo       `toml:"server"     env_interpolation:"yes"`
	Transport  Transport        `toml:"transport"  env_interpolation:"yes"`
	Logging    logs.Config      `toml:"logging"    env_interpolation:"yes"`
	Priorities PrioritiesConfig `toml:"priorities" env_interpolation:"yes"`
}

// ServerInfo is what the MCP server reports about itself during initialization
type ServerInfo struct {
	Name         string `toml:"name"         env_interpolation:"yes"`
	Version      string `toml:"version"      env_interpolation:"yes"`
	Instructions string `toml:"instructions" env_interpolation:"yes"`
}

// PrioritiesConfig holds the canonical spellings used by set_priorities
type PrioritiesConfig struct {
	Known []string `toml:"known" env_interpolation:"yes"`
}

// NewDefault returns a config that serves over stdio with logs on stderr.
func NewDefault() *Config {
	return &Config{
		Version: VersionLatest,
		Server: ServerInfo{
			Name:    DefaultServerName,
			Version: DefaultServerVer,
		},
		Transport: Transport{
			Type:         TransportStdio,
			Listen:       DefaultListen,
			Path:         DefaultPath,
			ReadTimeout:  FromDuration(DefaultReadTimeout),
			WriteTimeout: FromDuration(DefaultWriteTimeout),
			IdleTimeout:  FromDuration(DefaultIdleTimeout),
			DrainTimeout: FromDuration(DefaultDrainTimeout),
		},
		Logging: logs.NewDefault(),
		Priorities: PrioritiesConfig{
			Known: slices.Clone(decision.DefaultKnownPriorities),
		},
	}
}
