package metrics

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// reservedPaths are served by the validator API itself.
var reservedPaths = []string{"/health", "/ready", "/status", "/validate"}

// Config represents metrics endpoint configuration.
type Config struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Validate validates metrics configuration.
func (m *Config) Validate() error {
	if !m.Enabled {
		return nil
	}

	if m.Path == "" {
		return errors.New("metrics path is required when metrics are enabled")
	}

	if !strings.HasPrefix(m.Path, "/") {
		return errors.New("metrics path must start with /")
	}

	if slices.Contains(reservedPaths, m.Path) {
		return fmt.Errorf("metrics path %s conflicts with an API endpoint", m.Path)
	}

	return nil
}
