package redisclient

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedisFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	rdb, err := NewRedisFromURL(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	defer rdb.Close()

	assert.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestNewRedisFromURL_Invalid(t *testing.T) {
	_, err := NewRedisFromURL(context.Background(), "not a url")
	assert.Error(t, err)
}
