package logs

import (
	"fmt"

	"github.com/atlanticdynamic/decision-helper/internal/fancy"
)

const unsetValue = "(default)"

// String renders the config on one line, e.g. "info/text -> stderr".
func (lc *Config) String() string {
	return fmt.Sprintf("%s/%s -> %s", orUnset(lc.Level.String()), orUnset(lc.Format.String()), lc.describeOutput())
}

// ToTree renders the logging section for the config tree.
func (lc *Config) ToTree() *fancy.ComponentTree {
	tree := fancy.NewComponentTree("Logging")
	tree.AddChild("Level: " + orUnset(lc.Level.String()))
	tree.AddChild("Format: " + orUnset(lc.Format.String()))
	tree.AddChild("Output: " + lc.describeOutput())
	return tree
}

func (lc *Config) describeOutput() string {
	switch lc.Output {
	case "":
		return unsetValue
	case OutputStdout, OutputStderr:
		return lc.Output
	default:
		return lc.Output + " (file)"
	}
}

func orUnset(v string) string {
	if v == "" {
		return unsetValue
	}
	return v
}
