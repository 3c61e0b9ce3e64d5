package pillar

import (
	"context"
	"fmt"

	"github.com/edelwud/pillar-validator/internal/config/modules/source"
	"github.com/edelwud/pillar-validator/internal/domain"
)

// NewSource creates a pillar source based on configuration.
func NewSource(config source.Config, logger domain.Logger) (domain.PillarSource, error) {
	switch domain.PillarSourceType(config.Type) {
	case domain.PillarSourceTypeFile:
		logger.Info("Creating file pillar source", domain.Field{Key: "path", Value: config.File.Path})

		fileSource, err := NewFileSource(config.File, logger)
		if err != nil {
			return nil, err
		}
		return fileSource, nil

	case domain.PillarSourceTypeRedis:
		logger.Info("Creating Redis pillar source",
			domain.Field{Key: "address", Value: config.Redis.Address},
			domain.Field{Key: "key", Value: config.Redis.Key})

		redisSource, err := NewRedisSource(config.Redis, logger)
		if err != nil {
			return nil, err
		}
		return redisSource, nil

	case domain.PillarSourceTypeKubernetes:
		logger.Info("Creating Kubernetes pillar source",
			domain.Field{Key: "namespace", Value: config.Kubernetes.Namespace},
			domain.Field{Key: "configmap", Value: config.Kubernetes.ConfigMap})

		k8sSource, err := NewKubernetesSource(config.Kubernetes, logger)
		if err != nil {
			return nil, err
		}
		return k8sSource, nil

	default:
		return nil, fmt.Errorf("unsupported pillar source type: %s", config.Type)
	}
}

// StaticSource serves an already loaded pillar. Each Load returns an
// independent copy.
type StaticSource struct {
	name   string
	pillar *MapPillar
}

// NewStaticSource wraps a pillar snapshot as a source.
func NewStaticSource(name string, p *MapPillar) *StaticSource {
	return &StaticSource{name: name, pillar: p}
}

// Name identifies the source.
func (s *StaticSource) Name() string {
	return s.name
}

// Load returns a copy of the wrapped pillar.
func (s *StaticSource) Load(_ context.Context) (domain.Pillar, error) {
	return s.pillar.Clone(), nil
}
