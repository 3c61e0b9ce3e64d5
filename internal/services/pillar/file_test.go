package pillar_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edelwud/pillar-validator/internal/config/modules/source"
	"github.com/edelwud/pillar-validator/internal/services/pillar"
	"github.com/edelwud/pillar-validator/internal/testutils"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFileSource_LoadSLS(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "ceph-salt.sls", testutils.ValidPillarYAML)

	src, err := pillar.NewFileSource(source.FileConfig{Path: path}, testutils.NewMockLogger())
	require.NoError(t, err)
	assert.Equal(t, "file:"+path, src.Name())

	p, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "10.20.188.201", pillar.GetString(p, "ceph-salt:bootstrap_mon_ip"))
	assert.Equal(t,
		[]string{"node1.ceph.com", "node2.ceph.com", "node3.ceph.com"},
		pillar.GetStringSlice(p, "ceph-salt:minions:all"))
	assert.Equal(t,
		"docker.io/ceph/daemon-base:latest",
		pillar.GetString(p, "ceph-salt:container:images:ceph"))

	enabled, isBool := pillar.GetBool(p, "ceph-salt:time_server:enabled")
	assert.True(t, enabled)
	assert.True(t, isBool)
}

func TestFileSource_LoadJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "pillar.json", `{"ceph-salt": {"dashboard": {"username": "admin"}}}`)

	src, err := pillar.NewFileSource(source.FileConfig{Path: path}, testutils.NewMockLogger())
	require.NoError(t, err)

	p, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", pillar.GetString(p, "ceph-salt:dashboard:username"))
}

func TestFileSource_ReloadsOnEachLoad(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "pillar.yaml", "ceph-salt:\n  bootstrap_minion: node1\n")

	src, err := pillar.NewFileSource(source.FileConfig{Path: path}, testutils.NewMockLogger())
	require.NoError(t, err)

	first, err := src.Load(context.Background())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("ceph-salt:\n  bootstrap_minion: node2\n"), 0o600))

	second, err := src.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "node1", pillar.GetString(first, "ceph-salt:bootstrap_minion"))
	assert.Equal(t, "node2", pillar.GetString(second, "ceph-salt:bootstrap_minion"))
}

func TestFileSource_Errors(t *testing.T) {
	t.Parallel()

	_, err := pillar.NewFileSource(source.FileConfig{}, testutils.NewMockLogger())
	require.Error(t, err)

	_, err = pillar.NewFileSource(source.FileConfig{Path: "/tmp/p.xml", Format: "xml"}, testutils.NewMockLogger())
	require.Error(t, err)

	src, err := pillar.NewFileSource(
		source.FileConfig{Path: filepath.Join(t.TempDir(), "missing.sls")},
		testutils.NewMockLogger(),
	)
	require.NoError(t, err)

	_, err = src.Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read pillar file")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = src.Load(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
