package tools

import "errors"

// ErrIDGeneration is returned when a decision ID cannot be created.
var ErrIDGeneration = errors.New("failed to generate decision id")
