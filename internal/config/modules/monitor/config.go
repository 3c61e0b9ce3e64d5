package monitor

import (
	"fmt"
	"time"
)

// Config represents periodic pillar validation in server mode.
type Config struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	// Deployed lists hosts passed to every periodic validation.
	Deployed []string `mapstructure:"deployed"`
}

// Validate validates monitor configuration.
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	if c.Interval < MinInterval {
		return fmt.Errorf("monitor interval must be at least %v, got %v", MinInterval, c.Interval)
	}

	return nil
}
