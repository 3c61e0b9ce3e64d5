package logging

import (
	"fmt"
	"slices"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// Config represents logging configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

var (
	validLevels = []domain.LogLevel{
		domain.LogLevelDebug, domain.LogLevelInfo, domain.LogLevelWarn, domain.LogLevelError,
	}
	validFormats = []domain.LogFormat{domain.LogFormatJSON, domain.LogFormatText}
)

// Validate validates logging configuration.
func (l *Config) Validate() error {
	if !slices.Contains(validLevels, domain.LogLevel(l.Level)) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", l.Level, validLevels)
	}

	if !slices.Contains(validFormats, domain.LogFormat(l.Format)) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", l.Format, validFormats)
	}

	return nil
}
