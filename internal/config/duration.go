package config

import (
	"fmt"
	"time"

	"github.com/atlanticdynamic/decision-helper/internal/config/errz"
)

// Duration is a time.Duration that reads and writes TOML strings such as "30s".
type Duration time.Duration

// FromDuration converts a time.Duration.
func FromDuration(d time.Duration) Duration {
	return Duration(d)
}

// AsDuration returns the value as a time.Duration.
func (d Duration) AsDuration() time.Duration {
	return time.Duration(d)
}

// OrDefault returns the value, or fallback when the value is zero.
func (d Duration) OrDefault(fallback time.Duration) time.Duration {
	if d == 0 {
		return fallback
	}
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Validate reports a negative timeout under the given transport setting name.
func (d Duration) Validate(setting string) error {
	if d < 0 {
		return fmt.Errorf("%w: transport.%s must not be negative (got %s)", errz.ErrInvalidValue, setting, d)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The receiver is left
// unchanged when text is not a Go duration.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: %w", errz.ErrInvalidValue, err)
	}
	*d = Duration(parsed)
	return nil
}
