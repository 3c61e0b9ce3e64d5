package monitor

import "time"

// Default monitor configuration values.
const (
	DefaultEnabled  = false
	DefaultInterval = time.Minute
	MinInterval     = time.Second
)

// GetDefaults returns default monitor configuration.
func GetDefaults() Config {
	return Config{
		Enabled:  DefaultEnabled,
		Interval: DefaultInterval,
		Deployed: []string{},
	}
}
