package repositories

import (
	"context"

	"github.com/google/uuid"

	"ads-api/domain/models"
)

type CategoryFieldRepository interface {
	Create(ctx context.Context, field *models.CategoryField) error
	// ListApplicable definitions ที่ active ของ category นี้รวม global (category_id IS NULL)
	// เรียงตาม display_priority, attribute และ preload options
	ListApplicable(ctx context.Context, categoryID uuid.UUID) ([]models.CategoryField, error)
}
