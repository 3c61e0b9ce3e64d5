// Package config loads the validator configuration from file and environment.
package config

import (
	"github.com/edelwud/pillar-validator/internal/config/modules/logging"
	"github.com/edelwud/pillar-validator/internal/config/modules/metrics"
	"github.com/edelwud/pillar-validator/internal/config/modules/monitor"
	"github.com/edelwud/pillar-validator/internal/config/modules/server"
	"github.com/edelwud/pillar-validator/internal/config/modules/source"
)

// Config represents the complete application configuration.
type Config struct {
	Logging logging.Config `mapstructure:"logging"`
	Metrics metrics.Config `mapstructure:"metrics"`
	Server  server.Config  `mapstructure:"server"`
	Source  source.Config  `mapstructure:"source"`
	Monitor monitor.Config `mapstructure:"monitor"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return ValidateConfig(c)
}
