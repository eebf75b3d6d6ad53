package repositories

import (
	"context"

	"github.com/google/uuid"

	"ads-api/domain/models"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	// ExistsActive ใช้ตรวจ category_id ตอน validate
	ExistsActive(ctx context.Context, id uuid.UUID) (bool, error)
	// ListActiveTree root categories พร้อม children ที่ active
	ListActiveTree(ctx context.Context) ([]*models.Category, error)
}
