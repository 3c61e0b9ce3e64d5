package logging

import "github.com/edelwud/pillar-validator/internal/domain"

// Default logging configuration values.
const (
	DefaultLevel  = string(domain.LogLevelInfo)
	DefaultFormat = string(domain.LogFormatJSON)
)

// GetDefaults returns default logging configuration.
func GetDefaults() Config {
	return Config{
		Level:  DefaultLevel,
		Format: DefaultFormat,
	}
}
