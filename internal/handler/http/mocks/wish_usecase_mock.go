package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
	"github.com/mikiasgoitom/DailyWish/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

// MockWishUsecase is a mock implementation of the WishUsecase interface
type MockWishUsecase struct {
	// Control mock behavior
	ShouldFailGetDailyWish bool
	ShouldFailCastVote     bool
	ShouldFailGetTally     bool
	AlreadyVoted           bool

	// Return values
	MockWish  usecasecontract.DailyWish
	MockTally entity.VoteTally

	// Recorded calls
	LastFID    *uint64
	LastChoice entity.VoteChoice
}

var _ usecasecontract.IWishUseCase = (*MockWishUsecase)(nil)

func NewMockWishUsecase() *MockWishUsecase {
	tally := entity.VoteTally{Date: "2024-01-15", WishIndex: 2, Likes: 3, Dislikes: 1}
	return &MockWishUsecase{
		MockWish: usecasecontract.DailyWish{
			Date:        tally.Date,
			Index:       tally.WishIndex,
			Text:        "May your coffee be strong & your inbox light.",
			Tally:       tally,
			Percentages: entity.CalculateVotePercentages(tally.Likes, tally.Dislikes),
		},
		MockTally: tally,
	}
}

func (m *MockWishUsecase) GetDailyWish(ctx context.Context, fid *uint64, now time.Time) (*usecasecontract.DailyWish, error) {
	m.LastFID = fid
	if m.ShouldFailGetDailyWish {
		return nil, errors.New("store unavailable")
	}
	wish := m.MockWish
	wish.HasVoted = fid != nil && m.AlreadyVoted
	return &wish, nil
}

func (m *MockWishUsecase) CastVote(ctx context.Context, fid uint64, choice entity.VoteChoice, now time.Time) (*usecasecontract.VoteOutcome, error) {
	m.LastFID = &fid
	m.LastChoice = choice
	if m.ShouldFailCastVote {
		return nil, errors.New("store unavailable")
	}
	wish := m.MockWish
	wish.HasVoted = true
	return &usecasecontract.VoteOutcome{
		DailyWish:    wish,
		Choice:       choice,
		Recorded:     !m.AlreadyVoted,
		AlreadyVoted: m.AlreadyVoted,
	}, nil
}

func (m *MockWishUsecase) GetTally(ctx context.Context, date string, index int) (*entity.VoteTally, error) {
	if m.ShouldFailGetTally {
		return nil, errors.New("store unavailable")
	}
	if index >= m.CatalogSize() {
		return nil, usecase.ErrIndexOutOfRange
	}
	tally := m.MockTally
	tally.Date = date
	tally.WishIndex = index
	return &tally, nil
}

func (m *MockWishUsecase) CatalogSize() int {
	return 5
}
