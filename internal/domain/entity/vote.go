package entity

// VoteChoice is the reaction a user casts on the daily wish.
type VoteChoice string

const (
	VoteChoiceLike    VoteChoice = "like"
	VoteChoiceDislike VoteChoice = "dislike"
)

// Frame buttons as rendered on the wish frame.
const (
	ButtonLike    = 1
	ButtonDislike = 2
)

// Valid reports whether c is one of the known choices.
func (c VoteChoice) Valid() bool {
	return c == VoteChoiceLike || c == VoteChoiceDislike
}

// VoteChoiceFromButton maps a frame button index to a choice.
func VoteChoiceFromButton(buttonIndex int) (VoteChoice, bool) {
	switch buttonIndex {
	case ButtonLike:
		return VoteChoiceLike, true
	case ButtonDislike:
		return VoteChoiceDislike, true
	}
	return "", false
}

// VoteTally holds the counters of a single (date, wish index) pair.
type VoteTally struct {
	Date      string `json:"date"`
	WishIndex int    `json:"wish_index"`
	Likes     int64  `json:"likes"`
	Dislikes  int64  `json:"dislikes"`
}

// Total returns the number of votes cast.
func (t VoteTally) Total() int64 {
	return t.Likes + t.Dislikes
}

// VotePercentages is the rounded like/dislike split. Both are zero when nobody voted,
// otherwise they always add up to 100.
type VotePercentages struct {
	LikesPct    int `json:"likes_pct"`
	DislikesPct int `json:"dislikes_pct"`
}
