package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/atlanticdynamic/decision-helper/internal/config/errz"
)

// Validate performs comprehensive validation of the configuration
func (c *Config) Validate() error {
	if c.Version == "" {
		c.Version = VersionLatest
	}
	if c.Version != VersionLatest {
		return fmt.Errorf("%w: %s", errz.ErrUnsupportedConfigVer, c.Version)
	}

	var errs []error

	if strings.TrimSpace(c.Server.Name) == "" {
		errs = append(errs, fmt.Errorf("%w: server.name", errz.ErrMissingRequiredField))
	}
	if strings.TrimSpace(c.Server.Version) == "" {
		errs = append(errs, fmt.Errorf("%w: server.version", errz.ErrMissingRequiredField))
	}

	if err := c.Transport.Validate(); err != nil {
		errs = append(errs, err)
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, err)
	}

	// stdout carries the JSON-RPC stream when serving over stdio
	if c.Transport.Type == TransportStdio && c.Logging.WritesToStdout() {
		errs = append(errs, fmt.Errorf(
			"%w: logging.output %q cannot be used with the %s transport",
			errz.ErrOutputConflict, c.Logging.Output, TransportStdio,
		))
	}

	if err := c.Priorities.Validate(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Validate checks the transport section. Listener settings are only checked for HTTP.
func (t *Transport) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("%w: %q", errz.ErrInvalidTransportType, t.Type)
	}
	if t.Type != TransportHTTP {
		return nil
	}

	var errs []error

	if t.Listen == "" {
		errs = append(errs, fmt.Errorf("%w: transport.listen", errz.ErrMissingRequiredField))
	} else if _, _, err := net.SplitHostPort(t.Listen); err != nil {
		errs = append(errs, fmt.Errorf("%w: transport.listen %q: %w", errz.ErrInvalidValue, t.Listen, err))
	}

	switch {
	case t.Path == "":
		errs = append(errs, fmt.Errorf("%w: transport.path", errz.ErrMissingRequiredField))
	case !strings.HasPrefix(t.Path, "/"):
		errs = append(errs, fmt.Errorf("%w: transport.path %q must start with /", errz.ErrInvalidValue, t.Path))
	case t.Path == HealthPath:
		errs = append(errs, fmt.Errorf("%w: transport.path %q is reserved", errz.ErrInvalidValue, t.Path))
	}

	timeouts := []struct {
		name  string
		value Duration
	}{
		{"read_timeout", t.ReadTimeout},
		{"write_timeout", t.WriteTimeout},
		{"idle_timeout", t.IdleTimeout},
		{"drain_timeout", t.DrainTimeout},
	}
	for _, timeout := range timeouts {
		if err := timeout.value.Validate(timeout.name); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Validate rejects blank entries and entries that differ only by case.
func (p *PrioritiesConfig) Validate() error {
	var errs []error
	seen := make(map[string]int, len(p.Known))
	for i, label := range p.Known {
		key := strings.ToLower(strings.TrimSpace(label))
		if key == "" {
			errs = append(errs, fmt.Errorf("%w: priorities.known[%d] is empty", errz.ErrInvalidValue, i))
			continue
		}
		if first, ok := seen[key]; ok {
			errs = append(errs, fmt.Errorf(
				"%w: priorities.known[%d] %q duplicates entry %d",
				errz.ErrInvalidValue, i, label, first,
			))
			continue
		}
		seen[key] = i
	}
	return errors.Join(errs...)
}
