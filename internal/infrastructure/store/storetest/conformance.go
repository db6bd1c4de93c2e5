// Package storetest holds the behaviour every key-value backend must share.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/DailyWish/internal/domain/contract"
)

// Run exercises s against the key-value contract. Keys are prefixed with the test name
// so the suite can share a database with other tests.
func Run(t *testing.T, s contract.IKeyValueStore) {
	t.Helper()
	ctx := context.Background()
	prefix := fmt.Sprintf("storetest:%d:", time.Now().UnixNano())

	t.Run("get missing key", func(t *testing.T) {
		v, ok, err := s.Get(ctx, prefix+"missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, int64(0), v)
	})

	t.Run("increment creates at zero", func(t *testing.T) {
		key := prefix + "likes"
		n, err := s.Increment(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = s.Increment(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		v, ok, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(2), v)
	})

	t.Run("add to set reports new members once", func(t *testing.T) {
		key := prefix + "voters"
		ok, err := s.IsMember(ctx, key, "42")
		require.NoError(t, err)
		assert.False(t, ok)

		added, err := s.AddToSet(ctx, key, "42")
		require.NoError(t, err)
		assert.True(t, added)

		added, err = s.AddToSet(ctx, key, "42")
		require.NoError(t, err)
		assert.False(t, added)

		ok, err = s.IsMember(ctx, key, "42")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = s.IsMember(ctx, key, "43")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("expire on missing key is ignored", func(t *testing.T) {
		assert.NoError(t, s.Expire(ctx, prefix+"nothing", time.Hour))
	})

	t.Run("expire keeps live keys readable", func(t *testing.T) {
		key := prefix + "ttl"
		_, err := s.Increment(ctx, key)
		require.NoError(t, err)
		require.NoError(t, s.Expire(ctx, key, time.Hour))

		v, ok, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, int64(1), v)
	})

	t.Run("concurrent adds of one member succeed once", func(t *testing.T) {
		key := prefix + "race"
		var wins atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				added, err := s.AddToSet(ctx, key, "7")
				if err == nil && added {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, int32(1), wins.Load())
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		key := prefix + "counter"
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = s.Increment(ctx, key)
			}()
		}
		wg.Wait()
		v, _, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, int64(20), v)
	})
}
