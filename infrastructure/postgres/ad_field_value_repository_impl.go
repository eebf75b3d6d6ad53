package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"ads-api/domain/models"
	"ads-api/domain/repositories"
)

type AdFieldValueRepositoryImpl struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAdFieldValueRepository(db *gorm.DB) repositories.AdFieldValueRepository {
	return &AdFieldValueRepositoryImpl{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (r *AdFieldValueRepositoryImpl) Persist(ctx context.Context, ad *models.Ad, values []models.AdFieldValue) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}
	if len(values) == 0 {
		return nil
	}

	// ทุกแถวได้ ad id และ timestamp เดียวกัน
	now := r.now()
	for i := range values {
		values[i].AdID = ad.ID
		values[i].CreatedAt = now
		values[i].UpdatedAt = now
		values[i].CategoryField = nil
	}

	return tx.WithContext(ctx).Create(&values).Error
}

func (r *AdFieldValueRepositoryImpl) ListByAd(ctx context.Context, adID uuid.UUID) ([]models.AdFieldValue, error) {
	var values []models.AdFieldValue
	err := conn(ctx, r.db).
		Preload("CategoryField").
		Where("ad_id = ?", adID).
		Order("created_at ASC, id ASC").
		Find(&values).Error
	return values, err
}
