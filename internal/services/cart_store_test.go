package services

import (
	"context"
	"testing"
	"time"

	"pos_terminal/internal/cart"
	"pos_terminal/internal/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseCartStore(t *testing.T, store CartStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx, "abc")
	assert.ErrorIs(t, err, ErrCartNotFound)

	c := cart.New()
	require.NoError(t, c.AddItem(cart.Product{ItemID: 1, Name: "A4", Price: dec("2.50")}, 2))
	require.NoError(t, store.Save(ctx, "abc", c))

	// Mutating the caller's cart after saving does not change what is stored.
	c.Clear()

	got, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.TotalPrice().Equal(dec("5")))

	found, err := store.Delete(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = store.Delete(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCartStore(t *testing.T) {
	exerciseCartStore(t, NewMemoryCartStore())
}

func TestRedisCartStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := redis.Initialize("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	exerciseCartStore(t, NewRedisCartStore(client, time.Hour))
	assert.Empty(t, mr.Keys())
}
