package config

import (
	"fmt"
	"strings"

	"github.com/atlanticdynamic/decision-helper/internal/config/errz"
)

// TransportType selects how the MCP server talks to its host
type TransportType string

// Constants for TransportType
const (
	TransportStdio TransportType = "stdio"
	TransportHTTP  TransportType = "http"
)

// Transport configures the stdio or streamable HTTP transport
type Transport struct {
	Type         TransportType `toml:"type"          env_interpolation:"yes"`
	Listen       string        `toml:"listen"        env_interpolation:"yes"`
	Path         string        `toml:"path"          env_interpolation:"yes"`
	ReadTimeout  Duration      `toml:"read_timeout"`
	WriteTimeout Duration      `toml:"write_timeout"`
	IdleTimeout  Duration      `toml:"idle_timeout"`
	DrainTimeout Duration      `toml:"drain_timeout"`
}

// String returns the string representation of TransportType
func (t TransportType) String() string {
	return string(t)
}

// IsValid checks if the TransportType is known
func (t TransportType) IsValid() bool {
	switch t {
	case TransportStdio, TransportHTTP:
		return true
	default:
		return false
	}
}

// TransportTypeFromString converts a string to a TransportType
func TransportTypeFromString(s string) (TransportType, error) {
	t := TransportType(strings.ToLower(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("%w: %s", errz.ErrInvalidTransportType, s)
	}
	return t, nil
}
