package config

import (
	"fmt"
)

// ValidateConfig performs comprehensive configuration validation.
func ValidateConfig(config *Config) error {
	if err := config.Logging.Validate(); err != nil {
		return fmt.Errorf("logging validation failed: %w", err)
	}

	if err := config.Metrics.Validate(); err != nil {
		return fmt.Errorf("metrics validation failed: %w", err)
	}

	if err := config.Server.Validate(); err != nil {
		return fmt.Errorf("server validation failed: %w", err)
	}

	if err := config.Source.Validate(); err != nil {
		return fmt.Errorf("source validation failed: %w", err)
	}

	if err := config.Monitor.Validate(); err != nil {
		return fmt.Errorf("monitor validation failed: %w", err)
	}

	if config.Monitor.Enabled && config.Monitor.Interval < config.Source.Timeout {
		return fmt.Errorf("monitor interval %v is shorter than source timeout %v",
			config.Monitor.Interval, config.Source.Timeout)
	}

	return nil
}
