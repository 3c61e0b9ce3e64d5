package pillar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"

	"github.com/edelwud/pillar-validator/internal/config/modules/source"
	"github.com/edelwud/pillar-validator/internal/services/pillar"
	"github.com/edelwud/pillar-validator/internal/testutils"
)

func k8sConfig() source.KubernetesConfig {
	return source.KubernetesConfig{
		Namespace: "ceph",
		ConfigMap: "ceph-salt-pillar",
		DataKey:   "ceph-salt.sls",
	}
}

func TestKubernetesSource_LoadData(t *testing.T) {
	t.Parallel()

	client := fake.NewSimpleClientset(&corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "ceph-salt-pillar", Namespace: "ceph"},
		Data:       map[string]string{"ceph-salt.sls": testutils.ValidPillarYAML},
	})

	src := pillar.NewKubernetesSourceWithClient(client, k8sConfig(), testutils.NewMockLogger())
	assert.Equal(t, "kubernetes:ceph/ceph-salt-pillar", src.Name())

	p, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "node1.ceph.com", pillar.GetString(p, "ceph-salt:time_server:server_host"))
}

func TestKubernetesSource_LoadBinaryData(t *testing.T) {
	t.Parallel()

	client := fake.NewSimpleClientset(&corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{Name: "ceph-salt-pillar", Namespace: "ceph"},
		BinaryData: map[string][]byte{"ceph-salt.sls": []byte("ceph-salt:\n  bootstrap_mon_ip: 10.0.0.1\n")},
	})

	src := pillar.NewKubernetesSourceWithClient(client, k8sConfig(), testutils.NewMockLogger())

	p, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1", pillar.GetString(p, "ceph-salt:bootstrap_mon_ip"))
}

func TestKubernetesSource_NotFound(t *testing.T) {
	t.Parallel()

	missingMap := pillar.NewKubernetesSourceWithClient(
		fake.NewSimpleClientset(), k8sConfig(), testutils.NewMockLogger())

	_, err := missingMap.Load(context.Background())
	require.ErrorIs(t, err, pillar.ErrPillarNotFound)

	missingKey := pillar.NewKubernetesSourceWithClient(
		fake.NewSimpleClientset(&corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: "ceph-salt-pillar", Namespace: "ceph"},
			Data:       map[string]string{"other.sls": "a: 1"},
		}),
		k8sConfig(),
		testutils.NewMockLogger(),
	)

	_, err = missingKey.Load(context.Background())
	require.ErrorIs(t, err, pillar.ErrPillarNotFound)
}
