package mcp

import "errors"

var (
	ErrInvalidTransport   = errors.New("invalid transport type")
	ErrMissingToolName    = errors.New("tool name is required")
	ErrUnsupportedContent = errors.New("unsupported content type")
)
