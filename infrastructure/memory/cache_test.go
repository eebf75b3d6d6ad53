package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Attribute string   `json:"attribute"`
	Options   []string `json:"options"`
}

func newClockedCache(start time.Time) (*Cache, *time.Time) {
	now := start
	c := NewCache()
	c.now = func() time.Time { return now }
	return c, &now
}

func TestCache_SetGet(t *testing.T) {
	ctx := context.Background()
	c := NewCache()

	require.NoError(t, c.Set(ctx, "category_fields:a", []sample{{Attribute: "condition", Options: []string{"new", "used"}}}, time.Hour))

	var got []sample
	found, err := c.Get(ctx, "category_fields:a", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []sample{{Attribute: "condition", Options: []string{"new", "used"}}}, got)

	// ผู้อ่านได้สำเนา แก้แล้วไม่กระทบ entry
	got[0].Options[0] = "mutated"
	var again []sample
	_, err = c.Get(ctx, "category_fields:a", &again)
	require.NoError(t, err)
	assert.Equal(t, "new", again[0].Options[0])
}

func TestCache_Miss(t *testing.T) {
	var got []sample
	found, err := NewCache().Get(context.Background(), "missing", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, now := newClockedCache(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, c.Set(ctx, "k", "v", 12*time.Hour))
	require.NoError(t, c.Set(ctx, "forever", "v", 0))

	*now = now.Add(12 * time.Hour)
	var got string
	found, _ := c.Get(ctx, "k", &got)
	assert.True(t, found, "entry is still valid at exactly the ttl")

	*now = now.Add(time.Second)
	found, _ = c.Get(ctx, "k", &got)
	assert.False(t, found)

	found, _ = c.Get(ctx, "forever", &got)
	assert.True(t, found)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 1, c.PurgeExpired())
	assert.Equal(t, 1, c.Len())
}

func TestCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	c := NewCache()

	for _, k := range []string{"category_fields:a", "category_fields:b", "other:a"} {
		require.NoError(t, c.Set(ctx, k, k, time.Hour))
	}

	require.NoError(t, c.Invalidate(ctx, "category_fields:a", "does-not-exist"))
	assert.Equal(t, 2, c.Len())

	n, err := c.InvalidatePrefix(ctx, "category_fields:")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var got string
	found, _ := c.Get(ctx, "other:a", &got)
	assert.True(t, found)
}

func TestNoopCache(t *testing.T) {
	ctx := context.Background()
	var c NoopCache

	require.NoError(t, c.Set(ctx, "k", "v", time.Hour))
	var got string
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
