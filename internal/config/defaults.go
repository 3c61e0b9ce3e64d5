package config

import (
	"github.com/edelwud/pillar-validator/internal/config/modules/logging"
	"github.com/edelwud/pillar-validator/internal/config/modules/metrics"
	"github.com/edelwud/pillar-validator/internal/config/modules/monitor"
	"github.com/edelwud/pillar-validator/internal/config/modules/server"
	"github.com/edelwud/pillar-validator/internal/config/modules/source"
)

// GetDefaults returns complete default configuration.
func GetDefaults() *Config {
	return &Config{
		Logging: logging.GetDefaults(),
		Metrics: metrics.GetDefaults(),
		Server:  server.GetDefaults(),
		Source:  source.GetDefaults(),
		Monitor: monitor.GetDefaults(),
	}
}
