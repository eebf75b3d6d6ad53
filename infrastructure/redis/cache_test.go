package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, *Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

type definition struct {
	Attribute string `json:"attribute"`
	Mandatory bool   `json:"isMandatory"`
}

func TestCache_SetGetWithTTL(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestCache(t)
	cache := NewCache(client)

	want := []definition{{Attribute: "year", Mandatory: true}}
	require.NoError(t, cache.Set(ctx, "category_fields:cars", want, 12*time.Hour))
	assert.Equal(t, 12*time.Hour, mr.TTL("category_fields:cars"))

	var got []definition
	found, err := cache.Get(ctx, "category_fields:cars", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)

	mr.FastForward(12*time.Hour + time.Second)
	found, err = cache.Get(ctx, "category_fields:cars", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_MissIsNotAnError(t *testing.T) {
	_, client := newTestCache(t)

	var got []definition
	found, err := NewCache(client).Get(context.Background(), "category_fields:none", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_InvalidateAndPrefix(t *testing.T) {
	ctx := context.Background()
	mr, client := newTestCache(t)
	cache := NewCache(client)

	for _, k := range []string{"category_fields:a", "category_fields:b", "sessions:a"} {
		require.NoError(t, cache.Set(ctx, k, definition{Attribute: k}, time.Hour))
	}

	require.NoError(t, cache.Invalidate(ctx, "category_fields:a"))
	assert.False(t, mr.Exists("category_fields:a"))

	n, err := cache.InvalidatePrefix(ctx, "category_fields:")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.False(t, mr.Exists("category_fields:b"))
	assert.True(t, mr.Exists("sessions:a"))
}

func TestClient_Ping(t *testing.T) {
	_, client := newTestCache(t)
	require.NoError(t, client.Ping(context.Background()))
}
