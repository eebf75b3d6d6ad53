package memory

import (
	"context"
	"time"

	"ads-api/domain/ports"
)

// NoopCache ไม่ cache อะไรเลย ทุก request อ่านจาก DB (CACHE_DRIVER=none)
type NoopCache struct{}

var _ ports.CachePort = NoopCache{}

func (NoopCache) Get(context.Context, string, any) (bool, error) { return false, nil }

func (NoopCache) Set(context.Context, string, any, time.Duration) error { return nil }

func (NoopCache) Invalidate(context.Context, ...string) error { return nil }

func (NoopCache) InvalidatePrefix(context.Context, string) (int64, error) { return 0, nil }
