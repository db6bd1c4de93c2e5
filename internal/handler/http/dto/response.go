package dto

import (
	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/DailyWish/internal/usecase/contract"
)

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DailyWishResponse is the JSON view of a daily wish.
type DailyWishResponse struct {
	Date        string                 `json:"date"`
	Index       int                    `json:"index"`
	Wish        string                 `json:"wish"`
	Likes       int64                  `json:"likes"`
	Dislikes    int64                  `json:"dislikes"`
	TotalVotes  int64                  `json:"total_votes"`
	Percentages entity.VotePercentages `json:"percentages"`
	HasVoted    bool                   `json:"has_voted"`
}

// ToDailyWishResponse converts a usecase DailyWish to its response DTO.
func ToDailyWishResponse(w usecasecontract.DailyWish) DailyWishResponse {
	return DailyWishResponse{
		Date:        w.Date,
		Index:       w.Index,
		Wish:        w.Text,
		Likes:       w.Tally.Likes,
		Dislikes:    w.Tally.Dislikes,
		TotalVotes:  w.Tally.Total(),
		Percentages: w.Percentages,
		HasVoted:    w.HasVoted,
	}
}

// TallyResponse is the JSON view of a vote tally.
type TallyResponse struct {
	Date        string                 `json:"date"`
	Index       int                    `json:"index"`
	Likes       int64                  `json:"likes"`
	Dislikes    int64                  `json:"dislikes"`
	TotalVotes  int64                  `json:"total_votes"`
	Percentages entity.VotePercentages `json:"percentages"`
}
