package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

// CastVote records fid's vote on today's wish. The voter is added to the day's voter
// set first and the counter is only incremented when that add was new, so a retried
// request never counts twice.
func (u *WishUsecase) CastVote(ctx context.Context, fid uint64, choice entity.VoteChoice, now time.Time) (*usecasecontract.VoteOutcome, error) {
	if !choice.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}
	if err := u.validator.ValidateFID(fid); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingVoter, err)
	}

	date, index, text := u.pick(&fid, now)
	voters := votersKey(date, index)
	member := voterMember(fid)

	alreadyVoted, err := u.store.IsMember(ctx, voters, member)
	if err != nil {
		return nil, fmt.Errorf("failed to check voter %d: %w", fid, err)
	}

	recorded := false
	if !alreadyVoted {
		added, err := u.store.AddToSet(ctx, voters, member)
		if err != nil {
			return nil, fmt.Errorf("failed to register voter %d: %w", fid, err)
		}
		if added {
			if _, err := u.store.Increment(ctx, counterKey(date, index, choice)); err != nil {
				u.logger.Errorf("voter %d registered on %s/%d but %s counter failed: %v", fid, date, index, choice, err)
				return nil, fmt.Errorf("failed to count %s vote: %w", choice, err)
			}
			recorded = true
			u.expireVoteKeys(ctx, date, index)
		} else {
			// lost the race against a concurrent request from the same fid
			alreadyVoted = true
		}
	}

	tally, err := u.readTally(ctx, date, index)
	if err != nil {
		return nil, err
	}

	if recorded {
		u.logger.Debugf("recorded %s vote from %d on %s/%d", choice, fid, date, index)
	}

	return &usecasecontract.VoteOutcome{
		DailyWish: usecasecontract.DailyWish{
			Date:        date,
			Index:       index,
			Text:        text,
			Tally:       tally,
			Percentages: entity.CalculateVotePercentages(tally.Likes, tally.Dislikes),
			HasVoted:    true,
		},
		Choice:       choice,
		Recorded:     recorded,
		AlreadyVoted: alreadyVoted,
	}, nil
}

// expireVoteKeys applies the retention policy. Expiry failures are logged, not returned.
func (u *WishUsecase) expireVoteKeys(ctx context.Context, date string, index int) {
	if u.keyTTL <= 0 {
		return
	}
	for _, key := range []string{likesKey(date, index), dislikesKey(date, index), votersKey(date, index)} {
		if err := u.store.Expire(ctx, key, u.keyTTL); err != nil {
			u.logger.Warnf("failed to set ttl on %s: %v", key, err)
		}
	}
}
