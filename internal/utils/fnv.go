package utils

import (
	"unicode/utf8"

	"github.com/segmentio/fasthash/fnv1a"
)

const fnvPrime32 uint32 = 0x01000193

// HashFNV1a32 returns the 32-bit FNV-1a hash of s. Each Unicode code point is folded
// into the accumulator as a single step, so for ASCII input the result is identical to
// the byte-oriented hash/fnv implementation. Invalid UTF-8 folds as U+FFFD.
func HashFNV1a32(s string) uint32 {
	if isASCII(s) {
		return fnv1a.HashString32(s)
	}
	h := uint32(fnv1a.Init32)
	for _, r := range s {
		h ^= uint32(r)
		h *= fnvPrime32
	}
	return h
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
