package utils

import (
	"fmt"
	"strconv"
	"time"
)

// WishDateLayout is the calendar date format used for selection and store keys.
const WishDateLayout = "2006-01-02"

// FormatWishDate returns the calendar date of now in loc.
func FormatWishDate(now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(WishDateLayout)
}

// IsWishDate reports whether s is a valid YYYY-MM-DD date.
func IsWishDate(s string) bool {
	_, err := time.Parse(WishDateLayout, s)
	return err == nil
}

// WishSelectionKey builds the string hashed for a (fid, date) pair. Anonymous callers
// share the date-only key.
func WishSelectionKey(fid *uint64, date string) string {
	if fid == nil {
		return date
	}
	return strconv.FormatUint(*fid, 10) + "-" + date
}

// SelectIndex deterministically maps a user and a date to a position in a catalog of
// catalogSize wishes. catalogSize must be at least 1.
func SelectIndex(fid *uint64, date string, catalogSize int) int {
	if catalogSize < 1 {
		panic(fmt.Sprintf("utils: SelectIndex called with catalog size %d", catalogSize))
	}
	h := HashFNV1a32(WishSelectionKey(fid, date))
	return int(uint64(h) % uint64(catalogSize))
}
