package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fidPtr(v uint64) *uint64 { return &v }

func TestSelectIndex_Deterministic(t *testing.T) {
	fid := fidPtr(12345)
	first := SelectIndex(fid, "2024-01-15", 5)
	second := SelectIndex(fid, "2024-01-15", 5)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, first)
}

func TestSelectIndex_Bounds(t *testing.T) {
	for size := 1; size <= 40; size++ {
		for fid := uint64(1); fid <= 200; fid++ {
			idx := SelectIndex(fidPtr(fid), "2024-03-09", size)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, size)
		}
	}
}

func TestSelectIndex_AnonymousIsDateStable(t *testing.T) {
	a := SelectIndex(nil, "2024-01-15", 5)
	b := SelectIndex(nil, "2024-01-15", 5)
	assert.Equal(t, a, b)
	assert.Equal(t, 0, a)
	assert.Equal(t, "2024-01-15", WishSelectionKey(nil, "2024-01-15"))
	assert.Equal(t, "7-2024-01-15", WishSelectionKey(fidPtr(7), "2024-01-15"))
}

func TestSelectIndex_SpreadsAcrossIdentifiers(t *testing.T) {
	const size = 10
	counts := make([]int, size)
	for fid := uint64(1); fid <= 10000; fid++ {
		counts[SelectIndex(fidPtr(fid), "2024-01-15", size)]++
	}
	for i, c := range counts {
		// uniform would be 1000 per bucket
		assert.Greater(t, c, 700, "bucket %d underfilled", i)
		assert.Less(t, c, 1300, "bucket %d overfilled", i)
	}
}

func TestSelectIndex_SpreadsAcrossDates(t *testing.T) {
	seen := map[int]bool{}
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 365; i++ {
		date := day.AddDate(0, 0, i).Format(WishDateLayout)
		seen[SelectIndex(fidPtr(12345), date, 30)] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestSelectIndex_PanicsOnEmptyCatalog(t *testing.T) {
	assert.Panics(t, func() { SelectIndex(nil, "2024-01-15", 0) })
}

func TestFormatWishDate(t *testing.T) {
	now := time.Date(2024, 1, 15, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-15", FormatWishDate(now, nil))

	tokyo := time.FixedZone("JST", 9*60*60)
	assert.Equal(t, "2024-01-16", FormatWishDate(now, tokyo))

	assert.True(t, IsWishDate("2024-02-29"))
	assert.False(t, IsWishDate("2023-02-29"))
	assert.False(t, IsWishDate("15/01/2024"))
}
