package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/DailyWish/internal/utils"
)

// ErrEmptyCatalog is returned when a catalog would hold no wishes.
var ErrEmptyCatalog = errors.New("wish catalog must contain at least one wish")

// WishCatalog is the fixed, ordered list of wishes a daily wish is picked from.
// It is built once at startup and never mutated afterwards.
type WishCatalog struct {
	wishes []string
}

// NewWishCatalog copies wishes into a new catalog.
func NewWishCatalog(wishes []string) (*WishCatalog, error) {
	if len(wishes) == 0 {
		return nil, ErrEmptyCatalog
	}
	cp := make([]string, len(wishes))
	for i, w := range wishes {
		w = strings.TrimSpace(w)
		if w == "" {
			return nil, fmt.Errorf("wish %d is blank", i)
		}
		cp[i] = w
	}
	return &WishCatalog{wishes: cp}, nil
}

// Len returns the number of wishes; always at least 1.
func (c *WishCatalog) Len() int {
	return len(c.wishes)
}

// At returns the wish at index i.
func (c *WishCatalog) At(i int) (string, bool) {
	if i < 0 || i >= len(c.wishes) {
		return "", false
	}
	return c.wishes[i], true
}

// Select returns the wish picked for fid on date. A nil fid picks the wish shared by
// all anonymous callers that day.
func (c *WishCatalog) Select(fid *uint64, date string) (int, string) {
	i := utils.SelectIndex(fid, date, len(c.wishes))
	return i, c.wishes[i]
}

// DefaultWishes is the catalog compiled into the binary.
var DefaultWishes = []string{
	"May your coffee be strong and your inbox be light today.",
	"May every bug you meet today have an obvious fix.",
	"May you find a moment of quiet in the middle of a busy day.",
	"May someone surprise you with an unexpected kindness.",
	"May your ideas land exactly the way you meant them.",
	"May you laugh so hard today that you forget what was bothering you.",
	"May the thing you have been putting off turn out to be easy.",
	"May your next conversation leave you a little wiser.",
	"May you be patient with yourself the way you are with friends.",
	"May good news find you before lunch.",
	"May your code compile on the first try.",
	"May the weather match your mood, as long as your mood is sunny.",
	"May you notice something beautiful you walked past yesterday.",
	"May your energy last until the very last task of the day.",
	"May you be the reason someone smiles today.",
	"May your plans bend without breaking.",
	"May you learn one new thing and share it with someone.",
	"May your worries shrink and your courage grow.",
	"May today give you a story worth telling tomorrow.",
	"May you rest well tonight, knowing you did enough.",
	"May old friends reach out and new friends find you.",
	"May your hard work be seen by the people who matter.",
	"May every door you knock on today open a little wider.",
	"May you trust your instincts and be right.",
	"May a small win today remind you how far you have come.",
	"May your playlist be perfect and your commute be short.",
	"May you find the right words at the right time.",
	"May your kindness come back to you twice over.",
	"May you make peace with one thing you cannot change.",
	"May the best part of your day still be ahead of you.",
}
