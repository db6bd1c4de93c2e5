package entity

// CalculateVotePercentages splits a tally into rounded percentages. Halves round up
// and the dislike share is derived from the like share so the pair sums to 100.
func CalculateVotePercentages(likes, dislikes int64) VotePercentages {
	if likes < 0 {
		likes = 0
	}
	if dislikes < 0 {
		dislikes = 0
	}
	total := likes + dislikes
	if total == 0 {
		return VotePercentages{}
	}
	// round(100*likes/total) in integers
	likesPct := int((200*likes + total) / (2 * total))
	return VotePercentages{
		LikesPct:    likesPct,
		DislikesPct: 100 - likesPct,
	}
}
