package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/store/storetest"
)

func TestMemoryStore_Contract(t *testing.T) {
	storetest.Run(t, NewMemoryStore())
}

func TestMemoryStore_ExpiredKeysVanish(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	_, err := s.Increment(ctx, "likes")
	require.NoError(t, err)
	_, err = s.AddToSet(ctx, "voters", "1")
	require.NoError(t, err)
	require.NoError(t, s.Expire(ctx, "likes", time.Hour))
	require.NoError(t, s.Expire(ctx, "voters", time.Hour))

	now = now.Add(2 * time.Hour)

	_, ok, err := s.Get(ctx, "likes")
	require.NoError(t, err)
	assert.False(t, ok)

	member, err := s.IsMember(ctx, "voters", "1")
	require.NoError(t, err)
	assert.False(t, member)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	s := NewMemoryStore()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Increment(ctx, "likes")
	assert.ErrorIs(t, err, context.Canceled)
}
