package logs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info/text -> stderr", (&Config{Format: FormatText, Level: LevelInfo, Output: OutputStderr}).String())
	assert.Equal(t, "debug/json -> stdout", (&Config{Format: FormatJSON, Level: LevelDebug, Output: OutputStdout}).String())
	assert.Equal(t, "(default)/(default) -> (default)", (&Config{}).String())
	assert.Equal(t,
		"warn/json -> /var/log/decisionhelper.log (file)",
		(&Config{Format: FormatJSON, Level: LevelWarn, Output: "/var/log/decisionhelper.log"}).String(),
	)
}

func TestConfig_ToTree(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		cfg := NewDefault()
		rendered := cfg.ToTree().String()
		assert.Contains(t, rendered, "Logging")
		assert.Contains(t, rendered, "Level: info")
		assert.Contains(t, rendered, "Format: text")
		assert.Contains(t, rendered, "Output: stderr")
		assert.NotContains(t, rendered, "(file)")
	})

	t.Run("file output", func(t *testing.T) {
		cfg := Config{Output: "logs/server.log"}
		rendered := cfg.ToTree().String()
		assert.Contains(t, rendered, "Output: logs/server.log (file)")
		assert.Contains(t, rendered, "Level: (default)")
	})
}
