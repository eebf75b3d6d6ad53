package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ads-api/domain/models"
	"ads-api/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *models.Category) error {
	return conn(ctx, r.db).Create(category).Error
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := conn(ctx, r.db).Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	err := conn(ctx, r.db).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) ExistsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := conn(ctx, r.db).Model(&models.Category{}).
		Where("id = ? AND is_active = ?", id, true).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepositoryImpl) ListActiveTree(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	// root ที่ active พร้อม children ที่ active
	err := conn(ctx, r.db).
		Where("parent_id IS NULL AND is_active = ?", true).
		Order("display_priority ASC, name ASC").
		Preload("Children", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("display_priority ASC, name ASC")
		}).
		Find(&categories).Error
	return categories, err
}
