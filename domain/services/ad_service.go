package services

import (
	"context"

	"github.com/google/uuid"

	"ads-api/domain/models"
)

type AdService interface {
	// CreateAd validate, coerce และบันทึก ad + field values ใน transaction เดียว
	// error เป็น fieldrules.ValidationErrors เมื่อ input ไม่ผ่าน
	CreateAd(ctx context.Context, userID uuid.UUID, input map[string]any) (*models.AdDetail, error)

	GetByID(ctx context.Context, id uuid.UUID) (*models.AdDetail, error)

	// ListByUser ads ของผู้ใช้ ใหม่สุดก่อน
	ListByUser(ctx context.Context, userID uuid.UUID, status *models.AdStatus) ([]*models.AdDetail, error)
}
