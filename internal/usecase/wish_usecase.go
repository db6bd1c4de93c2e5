package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mikiasgoitom/DailyWish/internal/domain/contract"
	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
	"github.com/mikiasgoitom/DailyWish/internal/utils"
)

// WishUsecase picks the daily wish for a caller and keeps its vote tally.
type WishUsecase struct {
	catalog   *entity.WishCatalog
	store     contract.IKeyValueStore
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
	loc       *time.Location
	keyTTL    time.Duration
}

var _ usecasecontract.IWishUseCase = (*WishUsecase)(nil)

// NewWishUsecase creates a WishUsecase. Dates are computed in loc; vote keys get keyTTL
// when it is positive.
func NewWishUsecase(catalog *entity.WishCatalog, store contract.IKeyValueStore, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger, loc *time.Location, keyTTL time.Duration) *WishUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &WishUsecase{
		catalog:   catalog,
		store:     store,
		validator: validator,
		logger:    logger,
		loc:       loc,
		keyTTL:    keyTTL,
	}
}

func likesKey(date string, index int) string {
	return fmt.Sprintf("dw:vote:%s:%d:likes", date, index)
}

func dislikesKey(date string, index int) string {
	return fmt.Sprintf("dw:vote:%s:%d:dislikes", date, index)
}

func votersKey(date string, index int) string {
	return fmt.Sprintf("dw:vote:%s:%d:voters", date, index)
}

func counterKey(date string, index int, choice entity.VoteChoice) string {
	if choice == entity.VoteChoiceLike {
		return likesKey(date, index)
	}
	return dislikesKey(date, index)
}

func voterMember(fid uint64) string {
	return strconv.FormatUint(fid, 10)
}

// CatalogSize returns the number of wishes in the catalog.
func (u *WishUsecase) CatalogSize() int {
	return u.catalog.Len()
}

// pick returns today's date, the selected index and its wish text.
func (u *WishUsecase) pick(fid *uint64, now time.Time) (string, int, string) {
	date := utils.FormatWishDate(now, u.loc)
	index, text := u.catalog.Select(fid, date)
	return date, index, text
}

// GetDailyWish returns the wish selected for fid today. A nil fid gets the wish
// shared by every anonymous caller on that date.
func (u *WishUsecase) GetDailyWish(ctx context.Context, fid *uint64, now time.Time) (*usecasecontract.DailyWish, error) {
	date, index, text := u.pick(fid, now)

	tally, err := u.readTally(ctx, date, index)
	if err != nil {
		return nil, err
	}

	hasVoted := false
	if fid != nil {
		hasVoted, err = u.store.IsMember(ctx, votersKey(date, index), voterMember(*fid))
		if err != nil {
			return nil, fmt.Errorf("failed to check voter %d: %w", *fid, err)
		}
	}

	return &usecasecontract.DailyWish{
		Date:        date,
		Index:       index,
		Text:        text,
		Tally:       tally,
		Percentages: entity.CalculateVotePercentages(tally.Likes, tally.Dislikes),
		HasVoted:    hasVoted,
	}, nil
}

// GetTally returns the counters of a given date and wish index.
func (u *WishUsecase) GetTally(ctx context.Context, date string, index int) (*entity.VoteTally, error) {
	if err := u.validator.ValidateDate(date); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if index < 0 || index >= u.catalog.Len() {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	tally, err := u.readTally(ctx, date, index)
	if err != nil {
		return nil, err
	}
	return &tally, nil
}

func (u *WishUsecase) readTally(ctx context.Context, date string, index int) (entity.VoteTally, error) {
	var likes, dislikes int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, _, err := u.store.Get(gctx, likesKey(date, index))
		likes = v
		return err
	})
	g.Go(func() error {
		v, _, err := u.store.Get(gctx, dislikesKey(date, index))
		dislikes = v
		return err
	})
	if err := g.Wait(); err != nil {
		return entity.VoteTally{}, fmt.Errorf("failed to read tally for %s/%d: %w", date, index, err)
	}
	return entity.VoteTally{
		Date:      date,
		WishIndex: index,
		Likes:     likes,
		Dislikes:  dislikes,
	}, nil
}
