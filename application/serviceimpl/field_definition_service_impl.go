package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ads-api/domain/models"
	"ads-api/domain/ports"
	"ads-api/domain/repositories"
	"ads-api/domain/services"
	"ads-api/pkg/logger"
)

const (
	// FieldCachePrefix key ของ definitions ต่อ category
	FieldCachePrefix = "category_fields:"
	// DefaultFieldCacheTTL 12 ชม.
	DefaultFieldCacheTTL = 12 * time.Hour
)

func FieldCacheKey(categoryID uuid.UUID) string {
	return FieldCachePrefix + categoryID.String()
}

type FieldDefinitionServiceImpl struct {
	fieldRepo  repositories.CategoryFieldRepository
	cache      ports.CachePort
	events     ports.EventPublisherPort
	ttl        time.Duration
	instanceID string
}

// NewFieldDefinitionService cache/events เป็น nil ได้ (ไม่ cache / ไม่ broadcast)
func NewFieldDefinitionService(
	fieldRepo repositories.CategoryFieldRepository,
	cache ports.CachePort,
	events ports.EventPublisherPort,
	ttl time.Duration,
	instanceID string,
) services.FieldDefinitionService {
	if ttl <= 0 {
		ttl = DefaultFieldCacheTTL
	}
	return &FieldDefinitionServiceImpl{
		fieldRepo:  fieldRepo,
		cache:      cache,
		events:     events,
		ttl:        ttl,
		instanceID: instanceID,
	}
}

func (s *FieldDefinitionServiceImpl) DefinitionsForCategory(ctx context.Context, categoryID uuid.UUID) ([]models.CategoryField, error) {
	key := FieldCacheKey(categoryID)

	// 1. cache ก่อน (cache พังไม่ทำให้ request พัง)
	if s.cache != nil {
		var cached []models.CategoryField
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			logger.WarnContext(ctx, "Field cache read failed", "key", key, "error", err)
		} else if found {
			return cached, nil
		}
	}

	// 2. DB
	fields, err := s.fieldRepo.ListApplicable(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list field definitions: %w", err)
	}
	fields = dropUnknownTypes(ctx, fields)

	// 3. เก็บ cache; คนมาพร้อมกันอาจเขียนซ้ำได้ ผลเหมือนกัน
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, fields, s.ttl); err != nil {
			logger.WarnContext(ctx, "Field cache write failed", "key", key, "error", err)
		}
	}

	return fields, nil
}

func dropUnknownTypes(ctx context.Context, fields []models.CategoryField) []models.CategoryField {
	out := fields[:0]
	for _, f := range fields {
		if !f.ValueType.Valid() {
			logger.WarnContext(ctx, "Skipping field definition with unknown value type",
				"field_id", f.ID, "attribute", f.Attribute, "value_type", string(f.ValueType))
			continue
		}
		out = append(out, f)
	}
	return out
}

func (s *FieldDefinitionServiceImpl) Invalidate(ctx context.Context, categoryID uuid.UUID) error {
	if err := s.EvictLocal(ctx, categoryID); err != nil {
		return err
	}
	s.broadcast(ctx, categoryID.String())
	logger.InfoContext(ctx, "Field definitions cache invalidated", "category_id", categoryID)
	return nil
}

func (s *FieldDefinitionServiceImpl) InvalidateAll(ctx context.Context) (int64, error) {
	if s.cache == nil {
		return 0, nil
	}
	n, err := s.cache.InvalidatePrefix(ctx, FieldCachePrefix)
	if err != nil {
		return n, fmt.Errorf("invalidate field cache: %w", err)
	}
	s.broadcast(ctx, "")
	logger.InfoContext(ctx, "All field definitions cache invalidated", "deleted", n)
	return n, nil
}

func (s *FieldDefinitionServiceImpl) EvictLocal(ctx context.Context, categoryID uuid.UUID) error {
	if s.cache == nil {
		return nil
	}
	if categoryID == uuid.Nil {
		_, err := s.cache.InvalidatePrefix(ctx, FieldCachePrefix)
		return err
	}
	if err := s.cache.Invalidate(ctx, FieldCacheKey(categoryID)); err != nil {
		return fmt.Errorf("invalidate field cache: %w", err)
	}
	return nil
}

// broadcast best effort: instance อื่นที่ใช้ memory cache จะล้างตาม
func (s *FieldDefinitionServiceImpl) broadcast(ctx context.Context, categoryID string) {
	if s.events == nil {
		return
	}
	event := &ports.FieldsInvalidatedEvent{
		CategoryID: categoryID,
		Origin:     s.instanceID,
		At:         time.Now().UTC(),
	}
	if err := s.events.PublishFieldsInvalidated(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to broadcast field invalidation", "category_id", categoryID, "error", err)
	}
}
