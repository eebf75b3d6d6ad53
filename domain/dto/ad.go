package dto

import (
	"time"

	"github.com/google/uuid"

	"ads-api/domain/models"
)

// === Requests ===

// ListMyAdsRequest query ของ GET /ads/mine
type ListMyAdsRequest struct {
	Status string `json:"status" query:"status" validate:"omitempty,oneof=draft published sold expired"`
}

// StatusFilter nil = ทุกสถานะ
func (r *ListMyAdsRequest) StatusFilter() *models.AdStatus {
	if r.Status == "" {
		return nil
	}
	s := models.AdStatus(r.Status)
	return &s
}

// === Responses ===

type AdResponse struct {
	ID            uuid.UUID                        `json:"id"`
	Title         string                           `json:"title"`
	Description   string                           `json:"description"`
	Price         *float64                         `json:"price"`
	Status        models.AdStatus                  `json:"status"`
	Category      *CategorySummary                 `json:"category"`
	DynamicFields map[string]models.ProjectedValue `json:"dynamicFields"`
	CreatedAt     time.Time                        `json:"createdAt"`
	UpdatedAt     time.Time                        `json:"updatedAt"`
}

type AdListResponse struct {
	Ads []*AdResponse `json:"ads"`
}

// === Mappers ===

func AdDetailToAdResponse(d *models.AdDetail) *AdResponse {
	if d == nil || d.Ad == nil {
		return nil
	}
	ad := d.Ad
	fields := d.DynamicFields
	if fields == nil {
		fields = map[string]models.ProjectedValue{}
	}

	resp := &AdResponse{
		ID:            ad.ID,
		Title:         ad.Title,
		Description:   ad.Description,
		Price:         ad.Price,
		Status:        ad.Status,
		DynamicFields: fields,
		CreatedAt:     ad.CreatedAt,
		UpdatedAt:     ad.UpdatedAt,
	}
	if ad.Category != nil {
		resp.Category = &CategorySummary{
			ID:         ad.Category.ID,
			Name:       ad.Category.Name,
			ExternalID: ad.Category.ExternalID,
		}
	}
	return resp
}

func AdDetailsToAdListResponse(details []*models.AdDetail) AdListResponse {
	out := AdListResponse{Ads: make([]*AdResponse, 0, len(details))}
	for _, d := range details {
		out.Ads = append(out.Ads, AdDetailToAdResponse(d))
	}
	return out
}
