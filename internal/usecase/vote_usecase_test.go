package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
	"github.com/mikiasgoitom/DailyWish/internal/infrastructure/store"
	"github.com/mikiasgoitom/DailyWish/internal/usecase"
)

func TestCastVote_RecordsOnce(t *testing.T) {
	uc := newTestUsecase(t, store.NewMemoryStore(), time.UTC)
	ctx := context.Background()

	first, err := uc.CastVote(ctx, 12345, entity.VoteChoiceLike, testNow)
	require.NoError(t, err)
	assert.True(t, first.Recorded)
	assert.False(t, first.AlreadyVoted)
	assert.True(t, first.HasVoted)
	assert.Equal(t, 2, first.Index)
	assert.Equal(t, int64(1), first.Tally.Likes)
	assert.Equal(t, entity.VotePercentages{LikesPct: 100, DislikesPct: 0}, first.Percentages)

	// a second vote, even with the other choice, changes nothing
	second, err := uc.CastVote(ctx, 12345, entity.VoteChoiceDislike, testNow)
	require.NoError(t, err)
	assert.False(t, second.Recorded)
	assert.True(t, second.AlreadyVoted)
	assert.Equal(t, int64(1), second.Tally.Likes)
	assert.Equal(t, int64(0), second.Tally.Dislikes)

	wish, err := uc.GetDailyWish(ctx, fidPtr(12345), testNow)
	require.NoError(t, err)
	assert.True(t, wish.HasVoted)
	assert.Equal(t, int64(1), wish.Tally.Total())
}

func TestCastVote_NewDayAllowsNewVote(t *testing.T) {
	uc := newTestUsecase(t, store.NewMemoryStore(), time.UTC)
	ctx := context.Background()

	_, err := uc.CastVote(ctx, 12345, entity.VoteChoiceLike, testNow)
	require.NoError(t, err)

	next, err := uc.CastVote(ctx, 12345, entity.VoteChoiceDislike, testNow.Add(24*time.Hour))
	require.NoError(t, err)
	assert.True(t, next.Recorded)
	assert.Equal(t, "2024-01-16", next.Date)
}

func TestCastVote_ConcurrentSameFID(t *testing.T) {
	uc := newTestUsecase(t, store.NewMemoryStore(), time.UTC)
	ctx := context.Background()

	const workers = 25
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		recorded int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out, err := uc.CastVote(ctx, 42, entity.VoteChoiceLike, testNow)
			if !assert.NoError(t, err) {
				return
			}
			if out.Recorded {
				mu.Lock()
				recorded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, recorded)
	wish, err := uc.GetDailyWish(ctx, fidPtr(42), testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), wish.Tally.Likes)
}

func TestCastVote_DistinctFIDsAllCount(t *testing.T) {
	uc := newTestUsecase(t, store.NewMemoryStore(), time.UTC)
	ctx := context.Background()

	const voters = 60
	var wg sync.WaitGroup
	for fid := uint64(1); fid <= voters; fid++ {
		wg.Add(1)
		go func(fid uint64) {
			defer wg.Done()
			choice := entity.VoteChoiceLike
			if fid%3 == 0 {
				choice = entity.VoteChoiceDislike
			}
			_, err := uc.CastVote(ctx, fid, choice, testNow)
			assert.NoError(t, err)
		}(fid)
	}
	wg.Wait()

	var likes, dislikes int64
	for i := 0; i < uc.CatalogSize(); i++ {
		tally, err := uc.GetTally(ctx, "2024-01-15", i)
		require.NoError(t, err)
		likes += tally.Likes
		dislikes += tally.Dislikes
	}
	assert.Equal(t, int64(40), likes)
	assert.Equal(t, int64(20), dislikes)
}

func TestCastVote_InvalidInput(t *testing.T) {
	uc := newTestUsecase(t, store.NewMemoryStore(), time.UTC)
	ctx := context.Background()

	_, err := uc.CastVote(ctx, 12345, entity.VoteChoice("meh"), testNow)
	assert.ErrorIs(t, err, usecase.ErrInvalidChoice)

	_, err = uc.CastVote(ctx, 0, entity.VoteChoiceLike, testNow)
	assert.ErrorIs(t, err, usecase.ErrMissingVoter)
}

func TestCastVote_StoreFailure(t *testing.T) {
	uc := newTestUsecase(t, failingStore{}, time.UTC)

	_, err := uc.CastVote(context.Background(), 12345, entity.VoteChoiceLike, testNow)

	require.Error(t, err)
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, usecase.ErrMissingVoter)
}

func TestCastVote_SetsKeyTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	kv := store.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = kv.Close() })
	uc := newTestUsecase(t, kv, time.UTC)

	out, err := uc.CastVote(context.Background(), 12345, entity.VoteChoiceDislike, testNow)
	require.NoError(t, err)
	require.True(t, out.Recorded)

	assert.Equal(t, 48*time.Hour, mr.TTL("dw:vote:2024-01-15:2:dislikes"))
	assert.Equal(t, 48*time.Hour, mr.TTL("dw:vote:2024-01-15:2:voters"))
	ok, err := mr.SIsMember("dw:vote:2024-01-15:2:voters", "12345")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(49 * time.Hour)
	assert.False(t, mr.Exists("dw:vote:2024-01-15:2:voters"))
}
