package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWishCatalog(t *testing.T) {
	src := []string{"first", "  second  "}
	c, err := NewWishCatalog(src)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	// mutating the source must not leak into the catalog
	src[0] = "changed"
	w, ok := c.At(0)
	assert.True(t, ok)
	assert.Equal(t, "first", w)

	w, ok = c.At(1)
	assert.True(t, ok)
	assert.Equal(t, "second", w)

	_, ok = c.At(2)
	assert.False(t, ok)
	_, ok = c.At(-1)
	assert.False(t, ok)
}

func TestNewWishCatalog_Invalid(t *testing.T) {
	_, err := NewWishCatalog(nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = NewWishCatalog([]string{"ok", "   "})
	assert.Error(t, err)
}

func TestDefaultWishesBuildACatalog(t *testing.T) {
	c, err := NewWishCatalog(DefaultWishes)
	require.NoError(t, err)
	assert.Equal(t, len(DefaultWishes), c.Len())
}

func TestVoteChoiceFromButton(t *testing.T) {
	c, ok := VoteChoiceFromButton(ButtonLike)
	assert.True(t, ok)
	assert.Equal(t, VoteChoiceLike, c)

	c, ok = VoteChoiceFromButton(ButtonDislike)
	assert.True(t, ok)
	assert.Equal(t, VoteChoiceDislike, c)

	_, ok = VoteChoiceFromButton(3)
	assert.False(t, ok)
	assert.False(t, VoteChoice("meh").Valid())
}

func TestWishCatalog_Select(t *testing.T) {
	c, err := NewWishCatalog([]string{"w0", "w1", "w2", "w3", "w4"})
	require.NoError(t, err)

	fid := uint64(12345)
	i, text := c.Select(&fid, "2024-01-15")
	assert.Equal(t, 2, i)
	assert.Equal(t, "w2", text)

	i, text = c.Select(nil, "2024-01-15")
	assert.Equal(t, 0, i)
	assert.Equal(t, "w0", text)

	// same inputs, same wish
	again, _ := c.Select(&fid, "2024-01-15")
	assert.Equal(t, 2, again)
}
