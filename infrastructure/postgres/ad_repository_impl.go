package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ads-api/domain/models"
	"ads-api/domain/repositories"
)

type AdRepositoryImpl struct {
	db          *gorm.DB
	fieldValues repositories.AdFieldValueRepository
}

func NewAdRepository(db *gorm.DB, fieldValues repositories.AdFieldValueRepository) repositories.AdRepository {
	return &AdRepositoryImpl{db: db, fieldValues: fieldValues}
}

func (r *AdRepositoryImpl) CreateWithFieldValues(ctx context.Context, ad *models.Ad, values []models.AdFieldValue) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txCtx := WithTx(ctx, tx)

		// Omit associations: field values ถูกเขียนผ่าน gateway เท่านั้น
		if err := tx.Omit("Category", "FieldValues").Create(ad).Error; err != nil {
			return err
		}

		return r.fieldValues.Persist(txCtx, ad, values)
	})
}

func (r *AdRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*models.Ad, error) {
	var ad models.Ad
	err := conn(ctx, r.db).Preload("Category").Where("id = ?", id).First(&ad).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &ad, nil
}

func (r *AdRepositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID, status *models.AdStatus) ([]*models.Ad, error) {
	var ads []*models.Ad
	query := conn(ctx, r.db).Preload("Category").Where("user_id = ?", userID)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC, id ASC").Find(&ads).Error
	return ads, err
}
