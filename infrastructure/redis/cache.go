package redis

import (
	"context"
	"time"

	"ads-api/domain/ports"
)

// Cache adapter ของ CachePort บน redis (แชร์ระหว่างหลาย instance)
type Cache struct {
	client *Client
}

func NewCache(client *Client) ports.CachePort {
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, key string, target any) (bool, error) {
	return c.client.GetJSON(ctx, key, target)
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return c.client.SetJSON(ctx, key, value, ttl)
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	return c.client.Del(ctx, keys...)
}

func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) (int64, error) {
	return c.client.ScanAndDelete(ctx, prefix+"*")
}
