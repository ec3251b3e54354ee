package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutURLIsNoop(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "ranking:semanal:20", []int{1, 2, 3}, time.Minute))

	var dest []int
	found, err := c.Get(ctx, "ranking:semanal:20", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, dest)

	assert.NoError(t, c.DeletePrefix(ctx, "ranking:"))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestNewRedisRejectsBadURL(t *testing.T) {
	_, err := NewRedis("not-a-redis-url")
	assert.Error(t, err)
}
