package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/mikiasgoitom/DailyWish/internal/domain/entity"
)

// WishLineWidth is the number of characters per line on the image card.
const WishLineWidth = 50

// WrapText breaks text on runs of whitespace into lines of at most width characters. A single word
// longer than width keeps its own line.
func WrapText(text string, width int) []string {
	var lines []string
	current := ""
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if utf8.RuneCountInString(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// StatsText summarizes a tally for the frame and the image card.
func StatsText(tally entity.VoteTally, pct entity.VotePercentages) string {
	total := tally.Total()
	if total <= 0 {
		return "Be the first to vote!"
	}
	return fmt.Sprintf("Likes %d%% • Dislikes %d%% • %s votes", pct.LikesPct, pct.DislikesPct, humanize.Comma(total))
}
