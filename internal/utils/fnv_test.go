package utils

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashFNV1a32_KnownValues(t *testing.T) {
	cases := map[string]uint32{
		"":                 0x811c9dc5,
		"a":                0xe40c292c,
		"foobar":           0xbf9cf968,
		"12345-2024-01-15": 0x59f6fbe2,
		"é":                0x6c0b6c44,
		"€uro":             0x859bccf5,
	}
	for in, want := range cases {
		assert.Equal(t, want, HashFNV1a32(in), "input %q", in)
	}
}

func TestHashFNV1a32_MatchesStdlibForASCII(t *testing.T) {
	for _, s := range []string{"", "x", "2024-01-15", "12345-2024-01-15", "The quick brown fox"} {
		h := fnv.New32a()
		h.Write([]byte(s))
		assert.Equal(t, h.Sum32(), HashFNV1a32(s), "input %q", s)
	}
}

func TestHashFNV1a32_Deterministic(t *testing.T) {
	assert.Equal(t, HashFNV1a32("test-string"), HashFNV1a32("test-string"))
	assert.NotEqual(t, HashFNV1a32("test-string-1"), HashFNV1a32("test-string-2"))
}

func TestHashFNV1a32_CodePointsNotBytes(t *testing.T) {
	// "é" is two bytes in UTF-8 but a single fold step here
	h := fnv.New32a()
	h.Write([]byte("é"))
	assert.NotEqual(t, h.Sum32(), HashFNV1a32("é"))
}
