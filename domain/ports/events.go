package ports

import (
	"context"
	"time"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Event Port - แจ้งระบบอื่นหลัง commit (best effort)
// ═══════════════════════════════════════════════════════════════════════════════

// AdCreatedEvent - Plain struct (ไม่มี NATS dependency)
type AdCreatedEvent struct {
	AdID       string    `json:"adId"`
	UserID     string    `json:"userId"`
	CategoryID string    `json:"categoryId"`
	Status     string    `json:"status"`
	FieldCount int       `json:"fieldCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FieldsInvalidatedEvent - บอกทุก instance ให้ล้าง cache ของ category
type FieldsInvalidatedEvent struct {
	CategoryID string    `json:"categoryId"` // ว่าง = ทุก category
	Origin     string    `json:"origin"`     // instance ที่ส่ง (ข้าม message ของตัวเอง)
	At         time.Time `json:"at"`
}

type EventPublisherPort interface {
	PublishAdCreated(ctx context.Context, event *AdCreatedEvent) error
	PublishFieldsInvalidated(ctx context.Context, event *FieldsInvalidatedEvent) error
}

// NoopEventPublisher ใช้เมื่อไม่ได้ตั้ง NATS
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishAdCreated(context.Context, *AdCreatedEvent) error { return nil }

func (NoopEventPublisher) PublishFieldsInvalidated(context.Context, *FieldsInvalidatedEvent) error {
	return nil
}
