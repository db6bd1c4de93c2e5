package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateVotePercentages(t *testing.T) {
	tests := []struct {
		likes, dislikes int64
		want            VotePercentages
	}{
		{0, 0, VotePercentages{}},
		{3, 1, VotePercentages{LikesPct: 75, DislikesPct: 25}},
		{1, 7, VotePercentages{LikesPct: 13, DislikesPct: 87}},
		{1, 2, VotePercentages{LikesPct: 33, DislikesPct: 67}},
		{2, 1, VotePercentages{LikesPct: 67, DislikesPct: 33}},
		{0, 5, VotePercentages{LikesPct: 0, DislikesPct: 100}},
		{5, 0, VotePercentages{LikesPct: 100, DislikesPct: 0}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateVotePercentages(tt.likes, tt.dislikes), "likes=%d dislikes=%d", tt.likes, tt.dislikes)
	}
}

func TestCalculateVotePercentages_SumsTo100(t *testing.T) {
	for likes := int64(0); likes <= 60; likes++ {
		for dislikes := int64(0); dislikes <= 60; dislikes++ {
			p := CalculateVotePercentages(likes, dislikes)
			if likes+dislikes == 0 {
				assert.Equal(t, VotePercentages{}, p)
				continue
			}
			assert.Equal(t, 100, p.LikesPct+p.DislikesPct)
			assert.GreaterOrEqual(t, p.LikesPct, 0)
			assert.LessOrEqual(t, p.LikesPct, 100)
		}
	}
}
