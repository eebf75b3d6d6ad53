package services

import (
	"context"

	"github.com/google/uuid"

	"ads-api/domain/models"
)

// FieldDefinitionService แหล่ง definitions ต่อ category (cache 12 ชม.)
type FieldDefinitionService interface {
	// DefinitionsForCategory definitions ที่ active (ของ category + global) พร้อม options
	DefinitionsForCategory(ctx context.Context, categoryID uuid.UUID) ([]models.CategoryField, error)

	// Invalidate ลบ cache ของ category และแจ้ง instance อื่น
	Invalidate(ctx context.Context, categoryID uuid.UUID) error

	// InvalidateAll ลบ cache ทุก category
	InvalidateAll(ctx context.Context) (int64, error)

	// EvictLocal ลบ cache ตาม event จาก instance อื่น (ไม่ broadcast ซ้ำ); uuid.Nil = ทุก category
	EvictLocal(ctx context.Context, categoryID uuid.UUID) error
}
