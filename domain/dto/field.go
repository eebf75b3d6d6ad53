package dto

import (
	"github.com/google/uuid"

	"ads-api/domain/models"
)

// FieldOptionResponse ตัวเลือกของ enum
type FieldOptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Slug  string `json:"slug,omitempty"`
}

// FieldDefinitionResponse สิ่งที่ client ต้องใช้ render ฟอร์มลงประกาศ
type FieldDefinitionResponse struct {
	ID          uuid.UUID             `json:"id"`
	Attribute   string                `json:"attribute"`
	Name        string                `json:"name"`
	ValueType   models.ValueType      `json:"valueType"`
	FilterType  string                `json:"filterType,omitempty"`
	IsMandatory bool                  `json:"isMandatory"`
	IsGlobal    bool                  `json:"isGlobal"`
	MinValue    *float64              `json:"minValue,omitempty"`
	MaxValue    *float64              `json:"maxValue,omitempty"`
	MinLength   *int                  `json:"minLength,omitempty"`
	MaxLength   *int                  `json:"maxLength,omitempty"`
	Options     []FieldOptionResponse `json:"options,omitempty"`
}

type CategoryFieldsResponse struct {
	CategoryID uuid.UUID                 `json:"categoryId"`
	Fields     []FieldDefinitionResponse `json:"fields"`
}

type InvalidateFieldsResponse struct {
	CategoryID  uuid.UUID `json:"categoryId"`
	Invalidated bool      `json:"invalidated"`
}

func FieldToFieldDefinitionResponse(f *models.CategoryField) FieldDefinitionResponse {
	resp := FieldDefinitionResponse{
		ID:          f.ID,
		Attribute:   f.Attribute,
		Name:        f.Name,
		ValueType:   f.ValueType,
		FilterType:  f.FilterType,
		IsMandatory: f.IsMandatory,
		IsGlobal:    f.IsGlobal(),
		MinValue:    f.MinValue,
		MaxValue:    f.MaxValue,
		MinLength:   f.MinLength,
		MaxLength:   f.MaxLength,
	}
	for _, o := range f.Options {
		resp.Options = append(resp.Options, FieldOptionResponse{Value: o.Value, Label: o.Label, Slug: o.Slug})
	}
	return resp
}

func FieldsToCategoryFieldsResponse(categoryID uuid.UUID, fields []models.CategoryField) CategoryFieldsResponse {
	out := CategoryFieldsResponse{CategoryID: categoryID, Fields: make([]FieldDefinitionResponse, 0, len(fields))}
	for i := range fields {
		out.Fields = append(out.Fields, FieldToFieldDefinitionResponse(&fields[i]))
	}
	return out
}
