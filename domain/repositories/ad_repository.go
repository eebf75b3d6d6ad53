package repositories

import (
	"context"

	"github.com/google/uuid"

	"ads-api/domain/models"
)

type AdRepository interface {
	// CreateWithFieldValues สร้าง ad และ field values ใน transaction เดียว ถ้าส่วนไหนพัง rollback ทั้งหมด
	CreateWithFieldValues(ctx context.Context, ad *models.Ad, values []models.AdFieldValue) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Ad, error)
	// ListByUser ใหม่สุดก่อน; status nil = ทุกสถานะ
	ListByUser(ctx context.Context, userID uuid.UUID, status *models.AdStatus) ([]*models.Ad, error)
}

// AdFieldValueRepository EAV gateway
type AdFieldValueRepository interface {
	// Persist bulk insert ต้องถูกเรียกภายใน transaction ที่สร้าง ad
	Persist(ctx context.Context, ad *models.Ad, values []models.AdFieldValue) error
	// ListByAd อ่านกลับพร้อม CategoryField (รวม definition ที่ inactive แล้ว)
	ListByAd(ctx context.Context, adID uuid.UUID) ([]models.AdFieldValue, error)
}
