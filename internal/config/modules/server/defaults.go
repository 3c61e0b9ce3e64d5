package server

import (
	"github.com/edelwud/pillar-validator/internal/domain"
)

// Default server configuration values.
const (
	DefaultAddress         = "127.0.0.1:8080"
	DefaultReadTimeout     = domain.DefaultReadTimeout
	DefaultWriteTimeout    = domain.DefaultWriteTimeout
	DefaultIdleTimeout     = domain.DefaultIdleTimeout
	DefaultShutdownTimeout = domain.DefaultShutdownTimeout
	DefaultMaxBodyBytes    = 1 << 20
)

// GetDefaults returns default server configuration.
func GetDefaults() Config {
	return Config{
		Address: DefaultAddress,
		Timeouts: Timeouts{
			Read:     DefaultReadTimeout,
			Write:    DefaultWriteTimeout,
			Idle:     DefaultIdleTimeout,
			Shutdown: DefaultShutdownTimeout,
		},
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}
