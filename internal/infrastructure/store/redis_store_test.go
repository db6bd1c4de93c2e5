package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/store/storetest"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *RedisStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s := NewRedisStore(rdb)
	t.Cleanup(func() { _ = s.Close() })
	return mr, s
}

func TestRedisStore_Contract(t *testing.T) {
	_, s := setupTestRedis(t)
	storetest.Run(t, s)
}

func TestRedisStore_UsesNativeTypes(t *testing.T) {
	mr, s := setupTestRedis(t)
	ctx := context.Background()

	_, err := s.Increment(ctx, "dw:vote:2024-01-15:2:likes")
	require.NoError(t, err)
	_, err = s.AddToSet(ctx, "dw:vote:2024-01-15:2:voters", "12345")
	require.NoError(t, err)

	v, err := mr.Get("dw:vote:2024-01-15:2:likes")
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	members, err := mr.Members("dw:vote:2024-01-15:2:voters")
	require.NoError(t, err)
	assert.Equal(t, []string{"12345"}, members)
}

func TestRedisStore_Expire(t *testing.T) {
	mr, s := setupTestRedis(t)
	ctx := context.Background()

	_, err := s.Increment(ctx, "k")
	require.NoError(t, err)
	require.NoError(t, s.Expire(ctx, "k", 48*time.Hour))
	assert.Equal(t, 48*time.Hour, mr.TTL("k"))

	mr.FastForward(49 * time.Hour)
	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStore_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	s := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}))
	defer s.Close()
	mr.Close()

	_, _, err = s.Get(context.Background(), "k")
	assert.Error(t, err)
}
