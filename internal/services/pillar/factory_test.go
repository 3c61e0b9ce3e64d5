package pillar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edelwud/pillar-validator/internal/config/modules/source"
	"github.com/edelwud/pillar-validator/internal/services/pillar"
	"github.com/edelwud/pillar-validator/internal/testutils"
)

func TestNewSource_File(t *testing.T) {
	t.Parallel()

	cfg := source.GetDefaults()
	cfg.File.Path = writeFile(t, "ceph-salt.sls", testutils.ValidPillarYAML)

	src, err := pillar.NewSource(cfg, testutils.NewMockLogger())
	require.NoError(t, err)
	assert.IsType(t, &pillar.FileSource{}, src)
}

func TestNewSource_Errors(t *testing.T) {
	t.Parallel()

	cfg := source.GetDefaults()
	cfg.Type = "etcd"

	_, err := pillar.NewSource(cfg, testutils.NewMockLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported pillar source type")

	cfg = source.GetDefaults()
	cfg.Type = "redis"
	cfg.Redis.Key = ""

	_, err = pillar.NewSource(cfg, testutils.NewMockLogger())
	require.Error(t, err)

	cfg = source.GetDefaults()
	cfg.Type = "kubernetes"
	cfg.Kubernetes.ConfigMap = ""

	_, err = pillar.NewSource(cfg, testutils.NewMockLogger())
	require.Error(t, err)
}

func TestStaticSource(t *testing.T) {
	t.Parallel()

	src := pillar.NewStaticSource("inline", testutils.NewValidPillar())
	assert.Equal(t, "inline", src.Name())

	first, err := src.Load(context.Background())
	require.NoError(t, err)

	mutable, ok := first.(*pillar.MapPillar)
	require.True(t, ok)
	mutable.Reset("ceph-salt:bootstrap_minion")

	second, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, second.Exists("ceph-salt:bootstrap_minion"))
}
