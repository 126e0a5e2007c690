package logs

import "errors"

var (
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrInvalidLogLevel  = errors.New("invalid log level")
	// ErrInvalidOutput covers network URLs; only stdout, stderr and file paths are writable.
	ErrInvalidOutput = errors.New("invalid log output")
)
