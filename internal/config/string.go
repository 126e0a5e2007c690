package config

import (
	"fmt"
	"strings"

	"github.com/atlanticdynamic/decision-helper/internal/fancy"
)

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.NewComponentTree(fmt.Sprintf("Decision Helper Config (%s)", cfg.Version))

	server := t.AddBranch("Server")
	server.Child(fmt.Sprintf("Name: %s", cfg.Server.Name))
	server.Child(fmt.Sprintf("Version: %s", cfg.Server.Version))
	if cfg.Server.Instructions != "" {
		server.Child(fmt.Sprintf("Instructions: %s", fancy.TruncateString(firstLine(cfg.Server.Instructions), 60)))
	}

	transport := t.AddBranch("Transport")
	transport.Child(fmt.Sprintf("Type: %s", cfg.Transport.Type))
	if cfg.Transport.Type == TransportHTTP {
		transport.Child(fmt.Sprintf("Listen: %s", cfg.Transport.Listen))
		transport.Child(fmt.Sprintf("Path: %s", cfg.Transport.Path))
		transport.Child(fmt.Sprintf("Read Timeout: %s", cfg.Transport.ReadTimeout))
		transport.Child(fmt.Sprintf("Write Timeout: %s", cfg.Transport.WriteTimeout))
		transport.Child(fmt.Sprintf("Idle Timeout: %s", cfg.Transport.IdleTimeout))
		transport.Child(fmt.Sprintf("Drain Timeout: %s", cfg.Transport.DrainTimeout))
	}

	t.AddChild(cfg.Logging.ToTree().Tree())

	prios := fancy.BranchNode("Known Priorities", fmt.Sprintf("(%d)", len(cfg.Priorities.Known)))
	for _, p := range cfg.Priorities.Known {
		prios.Child(p)
	}
	t.AddChild(prios)

	return t.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
