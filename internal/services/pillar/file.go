package pillar

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/edelwud/pillar-validator/internal/config/modules/source"
	"github.com/edelwud/pillar-validator/internal/domain"
)

// FileSource loads the pillar from a file on disk.
type FileSource struct {
	path   string
	format string
	logger domain.Logger
}

// NewFileSource creates a file pillar source.
func NewFileSource(config source.FileConfig, logger domain.Logger) (*FileSource, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &FileSource{
		path:   config.Path,
		format: config.ResolvedFormat(),
		logger: logger.With(domain.Field{Key: "component", Value: "pillar.file"}),
	}, nil
}

// Name identifies the source.
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Load reads and parses the pillar file.
func (s *FileSource) Load(ctx context.Context) (domain.Pillar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Pillar keys are colon separated; dots may appear in hostnames.
	v := viper.NewWithOptions(viper.KeyDelimiter(domain.PillarKeySeparator))
	v.SetConfigFile(s.path)
	v.SetConfigType(s.format)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read pillar file %s: %w", s.path, err)
	}

	p := NewMapPillar(v.AllSettings())

	s.logger.Debug("Pillar file loaded",
		domain.Field{Key: "path", Value: s.path},
		domain.Field{Key: "format", Value: s.format},
		domain.Field{Key: "keys", Value: len(v.AllKeys())})

	return p, nil
}
