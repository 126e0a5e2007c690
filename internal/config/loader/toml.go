package loader

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// VersionLatest is the only config version this loader understands.
const VersionLatest = "v1"

// tomlLoader implements the Loader interface for TOML files
type tomlLoader struct {
	source []byte
}

// NewTomlLoader creates a new TOML configuration loader
func NewTomlLoader(source []byte) *tomlLoader {
	return &tomlLoader{source: source}
}

// Source returns the raw TOML.
func (l *tomlLoader) Source() []byte {
	return l.source
}

// Decode checks the version key, then decodes the TOML into v. Unknown keys are rejected.
func (l *tomlLoader) Decode(v any) error {
	if len(l.source) == 0 {
		return ErrNoSourceProvided
	}

	var versionCheck struct {
		Version string `toml:"version"`
	}
	if err := toml.Unmarshal(l.source, &versionCheck); err != nil {
		return fmt.Errorf("%w: %w", ErrParseConfig, describe(err))
	}
	if versionCheck.Version != "" && versionCheck.Version != VersionLatest {
		return fmt.Errorf("%w: %s", ErrUnsupportedConfigVer, versionCheck.Version)
	}

	dec := toml.NewDecoder(bytes.NewReader(l.source))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrParseConfig, describe(err))
	}
	return nil
}

// describe adds the unknown keys or the line and column to TOML decode errors.
// StrictMissingError is checked first because it also matches as a DecodeError.
func describe(err error) error {
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		keys := make([]string, 0, len(strictErr.Errors))
		for i := range strictErr.Errors {
			keys = append(keys, strings.Join(strictErr.Errors[i].Key(), "."))
		}
		return fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), err)
	}
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Errorf("line %d column %d: %w", row, col, err)
	}
	return err
}
