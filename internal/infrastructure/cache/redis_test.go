package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	c := NewRedisCache(srv.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Connect(context.Background()))
	return c, srv
}

func TestRedisCache_SetGetRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	type payload struct {
		Name string   `json:"name"`
		Tags []string `json:"tags"`
	}

	var miss payload
	found, err := c.Get(ctx, "missing", &miss)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, c.Set(ctx, "item", payload{Name: "go", Tags: []string{"a", "b"}}, time.Minute))

	var got payload
	found, err = c.Get(ctx, "item", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "go", got.Name)
	assert.Equal(t, []string{"a", "b"}, got.Tags)
}

func TestRedisCache_TTLExpires(t *testing.T) {
	c, srv := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", true, time.Second))
	srv.FastForward(2 * time.Second)

	var v bool
	found, err := c.Get(ctx, "short", &v)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_Ping(t *testing.T) {
	c, srv := newTestCache(t)
	assert.NoError(t, c.Ping(context.Background()))

	srv.Close()
	assert.Error(t, c.Ping(context.Background()))
}
