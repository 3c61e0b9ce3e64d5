package pillar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edelwud/pillar-validator/internal/services/pillar"
	"github.com/edelwud/pillar-validator/internal/testutils"
)

func TestDecodeDocument_YAML(t *testing.T) {
	t.Parallel()

	doc, err := pillar.DecodeDocument([]byte(testutils.ValidPillarYAML))
	require.NoError(t, err)

	p := pillar.NewMapPillar(doc)
	assert.Equal(t, "node1.ceph.com", pillar.GetString(p, "ceph-salt:bootstrap_minion"))
	assert.Equal(t, []string{"node1.ceph.com"}, pillar.GetStringSlice(p, "ceph-salt:minions:admin"))

	enabled, isBool := pillar.GetBool(p, "ceph-salt:updates:enabled")
	assert.True(t, enabled)
	assert.True(t, isBool)
}

func TestDecodeDocument_JSON(t *testing.T) {
	t.Parallel()

	doc, err := pillar.DecodeDocument([]byte(`{"ceph-salt": {"updates": {"reboot": false}}}`))
	require.NoError(t, err)

	reboot, isBool := pillar.GetBool(pillar.NewMapPillar(doc), "ceph-salt:updates:reboot")
	assert.False(t, reboot)
	assert.True(t, isBool)
}

func TestDecodeDocument_Empty(t *testing.T) {
	t.Parallel()

	doc, err := pillar.DecodeDocument(nil)
	require.NoError(t, err)
	assert.Empty(t, doc)

	doc, err = pillar.DecodeDocument([]byte("   \n"))
	require.NoError(t, err)
	assert.Empty(t, doc)
}

func TestDecodeDocument_Errors(t *testing.T) {
	t.Parallel()

	_, err := pillar.DecodeDocument([]byte("- just\n- a list\n"))
	require.ErrorIs(t, err, pillar.ErrInvalidDocument)

	_, err = pillar.DecodeDocument([]byte("ceph-salt: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse pillar document")
}
