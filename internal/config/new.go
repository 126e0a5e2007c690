package config

import (
	"fmt"
	"io"

	"github.com/atlanticdynamic/decision-helper/internal/config/errz"
	"github.com/atlanticdynamic/decision-helper/internal/config/loader"
	"github.com/atlanticdynamic/decision-helper/internal/interpolation"
)

// NewConfig loads configuration from a TOML file
func NewConfig(filePath string) (*Config, error) {
	ld, err := loader.NewLoaderFromFilePath(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

// NewConfigFromBytes loads configuration from TOML bytes
func NewConfigFromBytes(data []byte) (*Config, error) {
	ld, err := loader.NewLoaderFromBytes(data, tomlLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

// NewConfigFromReader loads configuration from an io.Reader providing TOML data
func NewConfigFromReader(reader io.Reader) (*Config, error) {
	ld, err := loader.NewLoaderFromReader(reader, tomlLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	return fromLoader(ld)
}

func tomlLoader(data []byte) loader.Loader {
	return loader.NewTomlLoader(data)
}

// fromLoader decodes over the defaults, so keys missing from the file keep their default value.
// ${VAR} references in string values are expanded before validation.
func fromLoader(ld loader.Loader) (*Config, error) {
	cfg := NewDefault()
	if err := ld.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}

	if err := interpolation.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToValidateConfig, err)
	}
	return cfg, nil
}
