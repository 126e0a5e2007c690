package logs

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the logging section, reporting every bad setting at once.
func (lc *Config) Validate() error {
	var errs []error
	if !lc.Format.IsValid() {
		errs = append(errs, fmt.Errorf("%w: logging.format %q (want text or json)", ErrInvalidLogFormat, lc.Format))
	}
	if !lc.Level.IsValid() {
		errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalidLogLevel, lc.Level))
	}
	if scheme, _, ok := strings.Cut(lc.Output, "://"); ok && scheme != "file" {
		errs = append(errs, fmt.Errorf("%w: logging.output %q (%s:// is not writable)", ErrInvalidOutput, lc.Output, scheme))
	}
	return errors.Join(errs...)
}
