package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdStatus string

const (
	AdStatusDraft     AdStatus = "draft"
	AdStatusPublished AdStatus = "published"
	AdStatusSold      AdStatus = "sold"
	AdStatusExpired   AdStatus = "expired"
)

// Ad ประกาศ; CategoryID ห้ามเปลี่ยนหลังสร้าง
type Ad struct {
	ID          uuid.UUID `gorm:"primaryKey;type:uuid"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"size:255;not null"`
	Description string    `gorm:"type:text;not null"`
	Price       *float64
	Status      AdStatus `gorm:"size:20;not null;default:published;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Category    *Category      `gorm:"foreignKey:CategoryID"`
	FieldValues []AdFieldValue `gorm:"foreignKey:AdID"`
}

func (Ad) TableName() string {
	return "ads"
}

func (a *Ad) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// AdFieldValue ค่า attribute แบบ EAV: มีคอลัมน์ค่าเดียวที่ไม่ null ตาม ValueType
type AdFieldValue struct {
	ID              uuid.UUID `gorm:"primaryKey;type:uuid"`
	AdID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ad_field"`
	CategoryFieldID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ad_field;index"`
	ValueString     *string   `gorm:"type:text"`
	ValueInteger    *int64
	ValueFloat      *float64
	ValueBoolean    *bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	CategoryField *CategoryField `gorm:"foreignKey:CategoryFieldID"`
}

func (AdFieldValue) TableName() string {
	return "ad_field_values"
}

func (v *AdFieldValue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// PopulatedColumns จำนวนคอลัมน์ค่าที่ไม่ null
func (v *AdFieldValue) PopulatedColumns() int {
	n := 0
	if v.ValueString != nil {
		n++
	}
	if v.ValueInteger != nil {
		n++
	}
	if v.ValueFloat != nil {
		n++
	}
	if v.ValueBoolean != nil {
		n++
	}
	return n
}
