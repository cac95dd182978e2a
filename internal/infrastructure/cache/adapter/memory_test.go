package adapter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shreya020904/Planner-ui/internal/clock"
	"github.com/Shreya020904/Planner-ui/internal/infrastructure/cache/port"
)

func TestMemoryCache_BasicOperations(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(clock.Fake(time.Unix(0, 0)))

	t.Run("MissThenSet", func(t *testing.T) {
		_, err := c.Get(ctx, "k")
		assert.ErrorIs(t, err, port.ErrMiss)

		require.NoError(t, c.Set(ctx, "k", "v", 0))
		v, err := c.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", v)
	})

	t.Run("Del", func(t *testing.T) {
		require.NoError(t, c.Set(ctx, "a", "1", 0))
		n, err := c.Del(ctx, "a", "missing")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestMemoryCache_Expiration(t *testing.T) {
	ctx := context.Background()
	clk := clock.Fake(time.Unix(0, 0))
	c := NewMemoryCache(clk)

	require.NoError(t, c.Set(ctx, "expiring", "v", time.Minute))
	v, err := c.Get(ctx, "expiring")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	clk.Advance(time.Minute)
	_, err = c.Get(ctx, "expiring")
	assert.ErrorIs(t, err, port.ErrMiss)
}
