package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Category node ใน taxonomy (อ่านอย่างเดียวจากฝั่ง ads, import job เป็นคนเขียน)
type Category struct {
	ID              uuid.UUID                   `gorm:"primaryKey;type:uuid"`
	ExternalID      int64                       `gorm:"uniqueIndex;not null"`
	Name            string                      `gorm:"size:255;not null"`
	NameL1          string                      `gorm:"size:255"` // ชื่อภาษาท้องถิ่น
	Slug            string                      `gorm:"size:255;index"`
	Level           int                         `gorm:"default:0"`
	ParentID        *uuid.UUID                  `gorm:"type:uuid;index"`
	DisplayPriority int                         `gorm:"default:0"`
	Purpose         string                      `gorm:"size:50"`
	Roles           datatypes.JSONSlice[string] `gorm:"type:json"`
	IsActive        bool                        `gorm:"default:true;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Relations
	Parent   *Category  `gorm:"foreignKey:ParentID"`
	Children []Category `gorm:"foreignKey:ParentID"`
}

func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
