package memory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"ads-api/domain/ports"
)

type entry struct {
	data      []byte
	expiresAt time.Time // zero = ไม่หมดอายุ
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Cache in-process CachePort; เก็บเป็น JSON bytes เพื่อให้ผู้อ่านได้สำเนาของตัวเองเสมอ
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

var _ ports.CachePort = (*Cache)(nil)

func (c *Cache) Get(ctx context.Context, key string, target any) (bool, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || e.expired(c.now()) {
		return false, nil
	}
	if err := json.Unmarshal(e.data, target); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	e := entry{data: data}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func (c *Cache) InvalidatePrefix(ctx context.Context, prefix string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
			n++
		}
	}
	return n, nil
}

// PurgeExpired ลบ entry ที่หมดอายุ (janitor เรียกตาม cron)
func (c *Cache) PurgeExpired() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len จำนวน entry ทั้งหมดรวมที่หมดอายุแล้วแต่ยังไม่ถูก purge
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
