package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "PILLAR_VALIDATOR"

// LoadConfig loads configuration from file and environment variables.
// A missing config file is not an error when configPath is empty.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/pillar-validator")
	v.AddConfigPath("$HOME/.pillar-validator")

	if configPath != "" {
		v.SetConfigFile(configPath)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindEnvironmentVariables(v)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// bindEnvironmentVariables binds all environment variables for each module.
func bindEnvironmentVariables(v *viper.Viper) {
	bindLoggingEnv(v)
	bindMetricsEnv(v)
	bindServerEnv(v)
	bindSourceEnv(v)
	bindMonitorEnv(v)
}

func bindLoggingEnv(v *viper.Viper) {
	_ = v.BindEnv("logging.level", "PILLAR_VALIDATOR_LOGGING_LEVEL")
	_ = v.BindEnv("logging.format", "PILLAR_VALIDATOR_LOGGING_FORMAT")
}

func bindMetricsEnv(v *viper.Viper) {
	_ = v.BindEnv("metrics.enabled", "PILLAR_VALIDATOR_METRICS_ENABLED")
	_ = v.BindEnv("metrics.path", "PILLAR_VALIDATOR_METRICS_PATH")
}

func bindServerEnv(v *viper.Viper) {
	_ = v.BindEnv("server.address", "PILLAR_VALIDATOR_SERVER_ADDRESS")
	_ = v.BindEnv("server.maxBodyBytes", "PILLAR_VALIDATOR_SERVER_MAX_BODY_BYTES")
	_ = v.BindEnv("server.timeouts.read", "PILLAR_VALIDATOR_SERVER_TIMEOUTS_READ")
	_ = v.BindEnv("server.timeouts.write", "PILLAR_VALIDATOR_SERVER_TIMEOUTS_WRITE")
	_ = v.BindEnv("server.timeouts.idle", "PILLAR_VALIDATOR_SERVER_TIMEOUTS_IDLE")
	_ = v.BindEnv("server.timeouts.shutdown", "PILLAR_VALIDATOR_SERVER_TIMEOUTS_SHUTDOWN")
}

func bindSourceEnv(v *viper.Viper) {
	_ = v.BindEnv("source.type", "PILLAR_VALIDATOR_SOURCE_TYPE")
	_ = v.BindEnv("source.timeout", "PILLAR_VALIDATOR_SOURCE_TIMEOUT")

	// File source
	_ = v.BindEnv("source.file.path", "PILLAR_VALIDATOR_SOURCE_FILE_PATH")
	_ = v.BindEnv("source.file.format", "PILLAR_VALIDATOR_SOURCE_FILE_FORMAT")

	// Redis source
	_ = v.BindEnv("source.redis.address", "PILLAR_VALIDATOR_SOURCE_REDIS_ADDRESS")
	_ = v.BindEnv("source.redis.password", "PILLAR_VALIDATOR_SOURCE_REDIS_PASSWORD")
	_ = v.BindEnv("source.redis.database", "PILLAR_VALIDATOR_SOURCE_REDIS_DATABASE")
	_ = v.BindEnv("source.redis.key", "PILLAR_VALIDATOR_SOURCE_REDIS_KEY")
	_ = v.BindEnv("source.redis.timeouts.connect", "PILLAR_VALIDATOR_SOURCE_REDIS_TIMEOUTS_CONNECT")
	_ = v.BindEnv("source.redis.timeouts.read", "PILLAR_VALIDATOR_SOURCE_REDIS_TIMEOUTS_READ")

	// Kubernetes source
	_ = v.BindEnv("source.kubernetes.namespace", "PILLAR_VALIDATOR_SOURCE_KUBERNETES_NAMESPACE")
	_ = v.BindEnv("source.kubernetes.configMap", "PILLAR_VALIDATOR_SOURCE_KUBERNETES_CONFIG_MAP")
	_ = v.BindEnv("source.kubernetes.dataKey", "PILLAR_VALIDATOR_SOURCE_KUBERNETES_DATA_KEY")
	_ = v.BindEnv("source.kubernetes.kubeconfig", "PILLAR_VALIDATOR_SOURCE_KUBERNETES_KUBECONFIG")
}

func bindMonitorEnv(v *viper.Viper) {
	_ = v.BindEnv("monitor.enabled", "PILLAR_VALIDATOR_MONITOR_ENABLED")
	_ = v.BindEnv("monitor.interval", "PILLAR_VALIDATOR_MONITOR_INTERVAL")
	_ = v.BindEnv("monitor.deployed", "PILLAR_VALIDATOR_MONITOR_DEPLOYED")
}

// setDefaults sets all default values from modules.
func setDefaults(v *viper.Viper) {
	defaults := GetDefaults()

	setLoggingDefaults(v, defaults)
	setMetricsDefaults(v, defaults)
	setServerDefaults(v, defaults)
	setSourceDefaults(v, defaults)
	setMonitorDefaults(v, defaults)
}

func setLoggingDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)
}

func setMetricsDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	v.SetDefault("metrics.path", defaults.Metrics.Path)
}

func setServerDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("server.address", defaults.Server.Address)
	v.SetDefault("server.maxBodyBytes", defaults.Server.MaxBodyBytes)
	v.SetDefault("server.timeouts.read", defaults.Server.Timeouts.Read.String())
	v.SetDefault("server.timeouts.write", defaults.Server.Timeouts.Write.String())
	v.SetDefault("server.timeouts.idle", defaults.Server.Timeouts.Idle.String())
	v.SetDefault("server.timeouts.shutdown", defaults.Server.Timeouts.Shutdown.String())
}

func setSourceDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("source.type", defaults.Source.Type)
	v.SetDefault("source.timeout", defaults.Source.Timeout.String())
	v.SetDefault("source.file.path", defaults.Source.File.Path)
	v.SetDefault("source.file.format", defaults.Source.File.Format)
	v.SetDefault("source.redis.address", defaults.Source.Redis.Address)
	v.SetDefault("source.redis.database", defaults.Source.Redis.Database)
	v.SetDefault("source.redis.key", defaults.Source.Redis.Key)
	v.SetDefault("source.redis.timeouts.connect", defaults.Source.Redis.Timeouts.Connect.String())
	v.SetDefault("source.redis.timeouts.read", defaults.Source.Redis.Timeouts.Read.String())
	v.SetDefault("source.kubernetes.namespace", defaults.Source.Kubernetes.Namespace)
	v.SetDefault("source.kubernetes.configMap", defaults.Source.Kubernetes.ConfigMap)
	v.SetDefault("source.kubernetes.dataKey", defaults.Source.Kubernetes.DataKey)
}

func setMonitorDefaults(v *viper.Viper, defaults *Config) {
	v.SetDefault("monitor.enabled", defaults.Monitor.Enabled)
	v.SetDefault("monitor.interval", defaults.Monitor.Interval.String())
	v.SetDefault("monitor.deployed", defaults.Monitor.Deployed)
}
