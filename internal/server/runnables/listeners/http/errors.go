package http

import "errors"

var (
	ErrNilServer      = errors.New("mcp server is nil")
	ErrMissingSetting = errors.New("missing transport setting")
	ErrBuildRoutes    = errors.New("failed to build routes")
)
