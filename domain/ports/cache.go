package ports

import (
	"context"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Cache Port - cache ของ field definitions (redis / memory / noop)
// ═══════════════════════════════════════════════════════════════════════════════

// CachePort - ค่าเก็บเป็น JSON; Get คืน false เมื่อไม่มี key (ไม่ใช่ error)
type CachePort interface {
	// Get อ่านค่าเข้า target
	Get(ctx context.Context, key string, target any) (bool, error)

	// Set เขียนค่าพร้อม TTL
	Set(ctx context.Context, key string, value any, ttl time.Duration) error

	// Invalidate ลบ key
	Invalidate(ctx context.Context, keys ...string) error

	// InvalidatePrefix ลบทุก key ที่ขึ้นต้นด้วย prefix คืนจำนวนที่ลบ
	InvalidatePrefix(ctx context.Context, prefix string) (int64, error)
}
