package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-service/internal/config"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	c := New(config.RedisConfig{})
	ctx := context.Background()

	assert.False(t, c.Enabled())
	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.SetObject(ctx, "k", map[string]int{"a": 1}, time.Minute))

	var out map[string]int
	found, err := c.GetObject(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, out)

	require.NoError(t, c.Delete(ctx, "k"))
	require.NoError(t, c.Close())
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	assert.False(t, c.Enabled())
}
