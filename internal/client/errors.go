package client

import "errors"

var (
	ErrInvalidEndpoint  = errors.New("invalid MCP endpoint")
	ErrConnectionFailed = errors.New("failed to connect to server")
	ErrInvalidArguments = errors.New("tool arguments must be a JSON object")
	ErrToolFailed       = errors.New("tool returned an error")
)
