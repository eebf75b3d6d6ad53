package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ValueType ชนิดของค่า attribute (closed set)
type ValueType string

const (
	ValueTypeString  ValueType = "string"
	ValueTypeInteger ValueType = "integer"
	ValueTypeFloat   ValueType = "float"
	ValueTypeEnum    ValueType = "enum"
	ValueTypeBoolean ValueType = "boolean"
)

func (v ValueType) Valid() bool {
	switch v {
	case ValueTypeString, ValueTypeInteger, ValueTypeFloat, ValueTypeEnum, ValueTypeBoolean:
		return true
	}
	return false
}

type FieldState string

const (
	FieldStateActive   FieldState = "active"
	FieldStateInactive FieldState = "inactive"
)

// RoleExcludeFromPost field ที่ไม่แสดง/ไม่รับตอนลงประกาศ
const RoleExcludeFromPost = "exclude_from_post_an_ad"

// CategoryField นิยาม attribute ของ category; CategoryID nil = global ใช้ได้ทุก category
type CategoryField struct {
	ID              uuid.UUID                   `gorm:"primaryKey;type:uuid" json:"id"`
	CategoryID      *uuid.UUID                  `gorm:"type:uuid;index" json:"categoryId"`
	ExternalID      *int64                      `gorm:"index" json:"externalId"`
	Attribute       string                      `gorm:"size:255;not null;index" json:"attribute"`
	Name            string                      `gorm:"size:255;not null" json:"name"`
	ValueType       ValueType                   `gorm:"size:20;not null" json:"valueType"`
	FilterType      string                      `gorm:"size:50" json:"filterType"`
	IsMandatory     bool                        `gorm:"default:false" json:"isMandatory"`
	Roles           datatypes.JSONSlice[string] `gorm:"type:json" json:"roles"`
	State           FieldState                  `gorm:"size:20;default:active;index" json:"state"`
	MinValue        *float64                    `json:"minValue"`
	MaxValue        *float64                    `json:"maxValue"`
	MinLength       *int                        `json:"minLength"`
	MaxLength       *int                        `json:"maxLength"`
	DisplayPriority int                         `gorm:"default:0" json:"displayPriority"`
	CreatedAt       time.Time                   `json:"createdAt"`
	UpdatedAt       time.Time                   `json:"updatedAt"`

	Options []CategoryFieldOption `gorm:"foreignKey:CategoryFieldID" json:"options"`
}

func (CategoryField) TableName() string {
	return "category_fields"
}

func (f *CategoryField) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (f *CategoryField) HasRole(role string) bool {
	return slices.Contains([]string(f.Roles), role)
}

func (f *CategoryField) IsExcludedFromPost() bool {
	return f.HasRole(RoleExcludeFromPost)
}

func (f *CategoryField) IsGlobal() bool {
	return f.CategoryID == nil
}

// AppliesTo own หรือ global
func (f *CategoryField) AppliesTo(categoryID uuid.UUID) bool {
	return f.CategoryID == nil || *f.CategoryID == categoryID
}

// OptionValues ค่า token ที่ใช้ได้ของ enum
func (f *CategoryField) OptionValues() []string {
	values := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		values = append(values, o.Value)
	}
	return values
}

type CategoryFieldOption struct {
	ID              uuid.UUID `gorm:"primaryKey;type:uuid" json:"id"`
	CategoryFieldID uuid.UUID `gorm:"type:uuid;not null;index" json:"categoryFieldId"`
	ExternalID      *int64    `json:"externalId"`
	Value           string    `gorm:"size:255;not null" json:"value"`
	Label           string    `gorm:"size:255" json:"label"`
	Slug            string    `gorm:"size:255" json:"slug"`
	DisplayPriority int       `gorm:"default:0" json:"displayPriority"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (CategoryFieldOption) TableName() string {
	return "category_field_options"
}

func (o *CategoryFieldOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
