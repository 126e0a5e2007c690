package stdio

import "errors"

var (
	ErrNilServer       = errors.New("mcp server is nil")
	ErrStateTransition = errors.New("state transition failed")
	ErrSessionFailed   = errors.New("mcp session failed")
)
