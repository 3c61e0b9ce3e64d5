package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/edelwud/pillar-validator/internal/domain"
)

// Config represents pillar source configuration.
type Config struct {
	Type       string           `mapstructure:"type"`
	Timeout    time.Duration    `mapstructure:"timeout"`
	File       FileConfig       `mapstructure:"file"`
	Redis      RedisConfig      `mapstructure:"redis,omitempty"`
	Kubernetes KubernetesConfig `mapstructure:"kubernetes,omitempty"`
}

// FileConfig represents a pillar file on disk.
type FileConfig struct {
	Path string `mapstructure:"path"`
	// Format overrides detection by extension (yaml, json, toml).
	Format string `mapstructure:"format"`
}

// RedisConfig represents a pillar document stored under a Redis key.
type RedisConfig struct {
	Address  string              `mapstructure:"address"`
	Password string              `mapstructure:"password"`
	Database int                 `mapstructure:"database"`
	Key      string              `mapstructure:"key"`
	Timeouts RedisTimeoutsConfig `mapstructure:"timeouts"`
}

// RedisTimeoutsConfig represents Redis timeout configuration.
type RedisTimeoutsConfig struct {
	Connect time.Duration `mapstructure:"connect"`
	Read    time.Duration `mapstructure:"read"`
}

// KubernetesConfig represents a pillar document stored in a ConfigMap.
type KubernetesConfig struct {
	Namespace  string `mapstructure:"namespace"`
	ConfigMap  string `mapstructure:"configMap"`
	DataKey    string `mapstructure:"dataKey"`
	Kubeconfig string `mapstructure:"kubeconfig"`
}

var validFileFormats = []string{"yaml", "yml", "json", "toml"}

// Validate validates pillar source configuration.
func (c *Config) Validate() error {
	if !domain.PillarSourceType(c.Type).IsValid() {
		return fmt.Errorf("invalid pillar source type: %s (valid: [file redis kubernetes])", c.Type)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("pillar source timeout must be positive, got %v", c.Timeout)
	}

	switch domain.PillarSourceType(c.Type) {
	case domain.PillarSourceTypeFile:
		return c.File.Validate()
	case domain.PillarSourceTypeRedis:
		return c.Redis.Validate()
	case domain.PillarSourceTypeKubernetes:
		return c.Kubernetes.Validate()
	default:
		return fmt.Errorf("unsupported pillar source type: %s", c.Type)
	}
}

// Validate validates file source configuration.
func (f *FileConfig) Validate() error {
	if f.Path == "" {
		return errors.New("pillar file path is required")
	}

	if f.Format != "" && !slices.Contains(validFileFormats, strings.ToLower(f.Format)) {
		return fmt.Errorf("invalid pillar file format: %s (valid: %v)", f.Format, validFileFormats)
	}

	return nil
}

// ResolvedFormat returns the configured format or one derived from the
// file extension. Salt pillar files (.sls) are YAML.
func (f *FileConfig) ResolvedFormat() string {
	if f.Format != "" {
		return strings.ToLower(f.Format)
	}

	switch ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(f.Path)), "."); ext {
	case "", "sls", "yml":
		return "yaml"
	default:
		return ext
	}
}

// Validate validates Redis source configuration.
func (r *RedisConfig) Validate() error {
	if r.Address == "" {
		return errors.New("redis address is required")
	}

	if r.Database < 0 {
		return fmt.Errorf("redis database must be non-negative, got %d", r.Database)
	}

	if r.Key == "" {
		return errors.New("redis pillar key is required")
	}

	if r.Timeouts.Connect <= 0 {
		return fmt.Errorf("redis connect timeout must be positive, got %v", r.Timeouts.Connect)
	}

	if r.Timeouts.Read <= 0 {
		return fmt.Errorf("redis read timeout must be positive, got %v", r.Timeouts.Read)
	}

	return nil
}

// Validate validates Kubernetes source configuration.
func (k *KubernetesConfig) Validate() error {
	if k.Namespace == "" {
		return errors.New("kubernetes namespace is required")
	}

	if k.ConfigMap == "" {
		return errors.New("kubernetes configMap name is required")
	}

	if k.DataKey == "" {
		return errors.New("kubernetes configMap data key is required")
	}

	return nil
}
