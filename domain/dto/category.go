package dto

import (
	"time"

	"github.com/google/uuid"

	"ads-api/domain/models"
)

// === Responses ===

type CategoryResponse struct {
	ID              uuid.UUID           `json:"id"`
	ExternalID      int64               `json:"externalId"`
	Name            string              `json:"name"`
	NameL1          string              `json:"nameL1,omitempty"`
	Slug            string              `json:"slug"`
	Level           int                 `json:"level"`
	ParentID        *uuid.UUID          `json:"parentId"`
	DisplayPriority int                 `json:"displayPriority"`
	Purpose         string              `json:"purpose,omitempty"`
	Roles           []string            `json:"roles"`
	CreatedAt       time.Time           `json:"createdAt"`
	Children        []*CategoryResponse `json:"children,omitempty"`
}

type CategoryListResponse struct {
	Categories []*CategoryResponse `json:"categories"`
}

// CategorySummary ข้อมูล category ย่อที่แนบไปกับ ad
type CategorySummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	ExternalID int64     `json:"externalId"`
}

// === Mappers ===

func CategoryToCategoryResponse(category *models.Category) *CategoryResponse {
	if category == nil {
		return nil
	}
	roles := []string(category.Roles)
	if roles == nil {
		roles = []string{}
	}
	resp := &CategoryResponse{
		ID:              category.ID,
		ExternalID:      category.ExternalID,
		Name:            category.Name,
		NameL1:          category.NameL1,
		Slug:            category.Slug,
		Level:           category.Level,
		ParentID:        category.ParentID,
		DisplayPriority: category.DisplayPriority,
		Purpose:         category.Purpose,
		Roles:           roles,
		CreatedAt:       category.CreatedAt,
	}
	for i := range category.Children {
		resp.Children = append(resp.Children, CategoryToCategoryResponse(&category.Children[i]))
	}
	return resp
}

func CategoriesToTreeResponses(categories []*models.Category) []*CategoryResponse {
	responses := make([]*CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, CategoryToCategoryResponse(category))
	}
	return responses
}
