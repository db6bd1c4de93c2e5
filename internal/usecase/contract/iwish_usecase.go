package usecasecontract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
)

// DailyWish is the wish a caller sees today together with its current tally.
type DailyWish struct {
	Date        string                 `json:"date"`
	Index       int                    `json:"index"`
	Text        string                 `json:"text"`
	Tally       entity.VoteTally       `json:"tally"`
	Percentages entity.VotePercentages `json:"percentages"`
	HasVoted    bool                   `json:"has_voted"`
}

// VoteOutcome is the result of casting a vote.
type VoteOutcome struct {
	DailyWish
	Choice entity.VoteChoice `json:"choice"`
	// Recorded is true only for the request that actually counted the vote.
	Recorded     bool `json:"recorded"`
	AlreadyVoted bool `json:"already_voted"`
}

// IWishUseCase defines the daily wish operations.
type IWishUseCase interface {
	GetDailyWish(ctx context.Context, fid *uint64, now time.Time) (*DailyWish, error)
	CastVote(ctx context.Context, fid uint64, choice entity.VoteChoice, now time.Time) (*VoteOutcome, error)
	GetTally(ctx context.Context, date string, index int) (*entity.VoteTally, error)
	CatalogSize() int
}
