package pillar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edelwud/pillar-validator/internal/services/pillar"
	"github.com/edelwud/pillar-validator/internal/testutils"
)

// stubRedis answers GET with a fixed reply.
type stubRedis struct {
	value   string
	err     error
	lastKey string
}

func (s *stubRedis) Get(_ context.Context, key string) *redis.StringCmd {
	s.lastKey = key
	return redis.NewStringResult(s.value, s.err)
}

func TestRedisSource_Load(t *testing.T) {
	t.Parallel()

	client := &stubRedis{value: testutils.ValidPillarYAML}
	src := pillar.NewRedisSourceWithClient(client, "pillar:ceph-salt", time.Second, testutils.NewMockLogger())

	assert.Equal(t, "redis:pillar:ceph-salt", src.Name())

	p, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pillar:ceph-salt", client.lastKey)
	assert.Equal(t, "node1.ceph.com", pillar.GetString(p, "ceph-salt:bootstrap_minion"))
	assert.Equal(t, []string{"pool.ntp.org"}, pillar.GetStringSlice(p, "ceph-salt:time_server:external_time_servers"))

	require.NoError(t, src.Close())
}

func TestRedisSource_MissingKey(t *testing.T) {
	t.Parallel()

	src := pillar.NewRedisSourceWithClient(&stubRedis{err: redis.Nil}, "absent", 0, testutils.NewMockLogger())

	_, err := src.Load(context.Background())
	require.ErrorIs(t, err, pillar.ErrPillarNotFound)
}

func TestRedisSource_Errors(t *testing.T) {
	t.Parallel()

	cause := errors.New("i/o timeout")
	src := pillar.NewRedisSourceWithClient(&stubRedis{err: cause}, "key", time.Second, testutils.NewMockLogger())

	_, err := src.Load(context.Background())
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to get pillar from Redis")

	bad := pillar.NewRedisSourceWithClient(&stubRedis{value: "42"}, "key", time.Second, testutils.NewMockLogger())
	_, err = bad.Load(context.Background())
	require.ErrorIs(t, err, pillar.ErrInvalidDocument)
}
