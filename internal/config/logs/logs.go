// Package logs holds the [logging] section of the server configuration.
package logs

import (
	"fmt"
	"strings"
)

// Format selects the slog handler: charmbracelet text or JSON.
type Format string

const (
	FormatUnspecified Format = ""
	FormatText        Format = "text"
	FormatJSON        Format = "json"
)

// Level is the minimum record level. Trace sits below slog's debug.
type Level string

const (
	LevelUnspecified Level = ""
	LevelTrace       Level = "trace"
	LevelDebug       Level = "debug"
	LevelInfo        Level = "info"
	LevelWarn        Level = "warn"
	LevelError       Level = "error"
)

// Well-known outputs. Anything else is treated as a file path.
const (
	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// spellings accepted from flags and config files, keyed by lowercase input
var (
	formatNames = map[string]Format{
		"":     FormatUnspecified,
		"text": FormatText,
		"txt":  FormatText,
		"json": FormatJSON,
	}
	levelNames = map[string]Level{
		"":        LevelUnspecified,
		"trace":   LevelTrace,
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
	}
)

// Config is the [logging] table.
type Config struct {
	Format Format `toml:"format" env_interpolation:"yes"`
	Level  Level  `toml:"level"  env_interpolation:"yes"`
	Output string `toml:"output" env_interpolation:"yes"`
}

// NewDefault returns text logging at info level on stderr, which keeps stdout free for
// the stdio transport.
func NewDefault() Config {
	return Config{Format: FormatText, Level: LevelInfo, Output: OutputStderr}
}

func (f Format) String() string { return string(f) }

func (l Level) String() string { return string(l) }

// IsValid accepts the canonical names and the unspecified value.
func (f Format) IsValid() bool {
	canonical, ok := formatNames[string(f)]
	return ok && canonical == f
}

// IsValid accepts the canonical names and the unspecified value.
func (l Level) IsValid() bool {
	canonical, ok := levelNames[string(l)]
	return ok && canonical == l
}

// WritesToStdout reports whether log lines would end up on the process stdout.
func (lc *Config) WritesToStdout() bool {
	return lc.Output == OutputStdout
}

// FormatFromString parses a format name case-insensitively; "txt" is an alias for text.
func FormatFromString(format string) (Format, error) {
	if f, ok := formatNames[strings.ToLower(format)]; ok {
		return f, nil
	}
	return FormatUnspecified, fmt.Errorf("%w: %s", ErrInvalidLogFormat, format)
}

// LevelFromString parses a level name case-insensitively; "warning" is an alias for warn.
func LevelFromString(level string) (Level, error) {
	if l, ok := levelNames[strings.ToLower(level)]; ok {
		return l, nil
	}
	return LevelUnspecified, fmt.Errorf("%w: %s", ErrInvalidLogLevel, level)
}
