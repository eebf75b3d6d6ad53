package services

import (
	"context"

	"github.com/google/uuid"

	"ads-api/domain/models"
)

type CategoryService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error)

	// GetBySlug slug ถูก normalize ก่อนค้น
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)

	// ListTree categories ที่ active แบบ tree
	ListTree(ctx context.Context) ([]*models.Category, error)

	// PostingFields definitions สำหรับฟอร์มลงประกาศ (ไม่รวม field ที่ exclude)
	PostingFields(ctx context.Context, id uuid.UUID) ([]models.CategoryField, error)
}
