package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid(t *testing.T) {
	for _, f := range []Format{FormatUnspecified, FormatText, FormatJSON} {
		assert.True(t, f.IsValid(), "format %q", f)
	}
	// aliases are parse-time only; the stored value must be canonical
	for _, f := range []Format{"txt", "JSON", "yaml"} {
		assert.False(t, f.IsValid(), "format %q", f)
	}

	for _, l := range []Level{LevelUnspecified, LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		assert.True(t, l.IsValid(), "level %q", l)
	}
	for _, l := range []Level{"warning", "INFO", "fatal"} {
		assert.False(t, l.IsValid(), "level %q", l)
	}
}

func TestFormatFromString(t *testing.T) {
	cases := map[string]Format{
		"":     FormatUnspecified,
		"text": FormatText,
		"TXT":  FormatText,
		"Json": FormatJSON,
	}
	for input, want := range cases {
		got, err := FormatFromString(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	got, err := FormatFromString("logfmt")
	require.ErrorIs(t, err, ErrInvalidLogFormat)
	assert.Equal(t, FormatUnspecified, got)
}

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"":        LevelUnspecified,
		"trace":   LevelTrace,
		"DEBUG":   LevelDebug,
		"info":    LevelInfo,
		"Warning": LevelWarn,
		"error":   LevelError,
	}
	for input, want := range cases {
		got, err := LevelFromString(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}

	got, err := LevelFromString("fatal")
	require.ErrorIs(t, err, ErrInvalidLogLevel)
	assert.Equal(t, LevelUnspecified, got)
	assert.Contains(t, err.Error(), "fatal")
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	assert.Equal(t, Config{Format: FormatText, Level: LevelInfo, Output: OutputStderr}, cfg)
	require.NoError(t, cfg.Validate())
	assert.False(t, cfg.WritesToStdout())
}

func TestConfig_WritesToStdout(t *testing.T) {
	assert.True(t, (&Config{Output: OutputStdout}).WritesToStdout())
	for _, output := range []string{OutputStderr, "", "/var/log/decisionhelper.log"} {
		assert.False(t, (&Config{Output: output}).WritesToStdout(), "output %q", output)
	}
}
