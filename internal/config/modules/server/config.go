package server

import (
	"errors"
	"fmt"
	"net"
	"time"
)

// Config represents the HTTP API server configuration.
type Config struct {
	Address  string   `mapstructure:"address"`
	Timeouts Timeouts `mapstructure:"timeouts"`
	// MaxBodyBytes limits the size of a /validate request body.
	MaxBodyBytes int64 `mapstructure:"maxBodyBytes"`
}

// Timeouts represents server timeout configuration.
type Timeouts struct {
	Read     time.Duration `mapstructure:"read"`
	Write    time.Duration `mapstructure:"write"`
	Idle     time.Duration `mapstructure:"idle"`
	Shutdown time.Duration `mapstructure:"shutdown"`
}

// Validate validates server configuration.
func (c *Config) Validate() error {
	if c.Address == "" {
		return errors.New("server address is required")
	}

	if _, _, err := net.SplitHostPort(c.Address); err != nil {
		return fmt.Errorf("invalid server address format: %w", err)
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("server max body size must be positive, got %d", c.MaxBodyBytes)
	}

	return c.Timeouts.Validate()
}

// Validate validates timeout configuration.
func (t *Timeouts) Validate() error {
	if t.Read <= 0 {
		return fmt.Errorf("server read timeout must be positive, got %v", t.Read)
	}

	if t.Write <= 0 {
		return fmt.Errorf("server write timeout must be positive, got %v", t.Write)
	}

	if t.Idle <= 0 {
		return fmt.Errorf("server idle timeout must be positive, got %v", t.Idle)
	}

	if t.Shutdown <= 0 {
		return fmt.Errorf("server shutdown timeout must be positive, got %v", t.Shutdown)
	}

	return nil
}
