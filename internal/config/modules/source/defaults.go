package source

import "time"

// Default pillar source configuration values.
const (
	DefaultType              = "file"
	DefaultTimeout           = 10 * time.Second
	DefaultFilePath          = "/srv/pillar/ceph-salt.sls"
	DefaultRedisAddress      = "localhost:6379"
	DefaultRedisKey          = "pillar-validator:ceph-salt"
	DefaultRedisConnect      = 5 * time.Second
	DefaultRedisRead         = 3 * time.Second
	DefaultKubernetesNS      = "default"
	DefaultKubernetesCM      = "ceph-salt-pillar"
	DefaultKubernetesDataKey = "ceph-salt.sls"
)

// GetDefaults returns default pillar source configuration.
func GetDefaults() Config {
	return Config{
		Type:    DefaultType,
		Timeout: DefaultTimeout,
		File: FileConfig{
			Path: DefaultFilePath,
		},
		Redis: RedisConfig{
			Address: DefaultRedisAddress,
			Key:     DefaultRedisKey,
			Timeouts: RedisTimeoutsConfig{
				Connect: DefaultRedisConnect,
				Read:    DefaultRedisRead,
			},
		},
		Kubernetes: KubernetesConfig{
			Namespace: DefaultKubernetesNS,
			ConfigMap: DefaultKubernetesCM,
			DataKey:   DefaultKubernetesDataKey,
		},
	}
}
