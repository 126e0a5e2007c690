package loader

import (
	"errors"
	"fmt"

	"github.com/atlanticdynamic/decision-helper/internal/config/errz"
)

// Loader-specific errors
var (
	ErrNoSourceProvided     = errors.New("no source provided to loader")
	ErrFileNotFound         = errors.New("config file does not exist")
	ErrUnsupportedExtension = errors.New("unsupported file extension")
	ErrParseConfig          = errors.New("failed to parse config")
	ErrUnsupportedConfigVer = errz.ErrUnsupportedConfigVer
)

// FormatFileError creates an error with file path context
func FormatFileError(err error, path string) error {
	return fmt.Errorf("%w: %s", err, path)
}
