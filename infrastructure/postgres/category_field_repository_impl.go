package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ads-api/domain/models"
	"ads-api/domain/repositories"
)

type CategoryFieldRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryFieldRepository(db *gorm.DB) repositories.CategoryFieldRepository {
	return &CategoryFieldRepositoryImpl{db: db}
}

func (r *CategoryFieldRepositoryImpl) Create(ctx context.Context, field *models.CategoryField) error {
	return conn(ctx, r.db).Create(field).Error
}

func (r *CategoryFieldRepositoryImpl) ListApplicable(ctx context.Context, categoryID uuid.UUID) ([]models.CategoryField, error) {
	var fields []models.CategoryField
	err := conn(ctx, r.db).
		Where("(category_id = ? OR category_id IS NULL) AND state = ?", categoryID, models.FieldStateActive).
		Order("display_priority ASC, attribute ASC").
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_priority ASC, value ASC")
		}).
		Find(&fields).Error
	if err != nil {
		return nil, err
	}
	return fields, nil
}
