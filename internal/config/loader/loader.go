// Package loader reads configuration sources and decodes them into Go values.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LoaderFunc builds a Loader over raw source bytes.
type LoaderFunc func([]byte) Loader

// Loader handles loading configuration from various sources
type Loader interface {
	// Decode parses the source into v, which must be a pointer
	Decode(v any) error
	// Source returns the raw bytes the loader was built from
	Source() []byte
}

// NewLoaderFromBytes creates a new Loader with the provided bytes
func NewLoaderFromBytes(data []byte, lodFunc LoaderFunc) (Loader, error) {
	if len(data) == 0 {
		return nil, ErrNoSourceProvided
	}
	return lodFunc(data), nil
}

// NewLoaderFromReader creates a new Loader from an io.Reader
func NewLoaderFromReader(reader io.Reader, lodFunc LoaderFunc) (Loader, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read config data from reader: %w", err)
	}
	return NewLoaderFromBytes(data, lodFunc)
}

// NewLoaderFromFilePath creates a new Loader from a file path, picking the format by extension.
func NewLoaderFromFilePath(filePath string) (Loader, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, FormatFileError(ErrFileNotFound, filePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filePath, err)
	}

	ext := filepath.Ext(filePath)
	switch ext {
	case ".toml":
		return NewLoaderFromBytes(data, func(data []byte) Loader { return NewTomlLoader(data) })
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedExtension, ext)
	}
}
