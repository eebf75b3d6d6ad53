package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"ads-api/domain/models"
)

// Fixture taxonomy เล็ก ๆ: Vehicles > Cars, Phones และ category ที่ปิดแล้ว
type Fixture struct {
	Vehicles models.Category
	Cars     models.Category
	Phones   models.Category
	Archived models.Category

	// Fields keyed by attribute (ของ Cars, Phones และ global)
	Fields map[string]models.CategoryField
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

// Seed สร้าง fixture ลง db
func Seed(t testing.TB, db *gorm.DB) *Fixture {
	t.Helper()

	f := &Fixture{
		Vehicles: models.Category{ExternalID: 1000, Name: "Vehicles", Slug: "vehicles", Level: 0, IsActive: true},
		Phones:   models.Category{ExternalID: 2000, Name: "Mobile Phones", Slug: "mobile-phones", Level: 0, DisplayPriority: 1, IsActive: true},
		Archived: models.Category{ExternalID: 3000, Name: "Fax Machines", Slug: "fax-machines", Level: 0, DisplayPriority: 2, IsActive: true},
		Fields:   make(map[string]models.CategoryField),
	}
	require.NoError(t, db.Create(&f.Vehicles).Error)
	require.NoError(t, db.Create(&f.Phones).Error)
	require.NoError(t, db.Create(&f.Archived).Error)

	// is_active มี default:true จึงต้อง update แยกหลังสร้าง
	require.NoError(t, db.Model(&f.Archived).Update("is_active", false).Error)
	f.Archived.IsActive = false

	parent := f.Vehicles.ID
	f.Cars = models.Category{ExternalID: 1010, Name: "Cars & Trucks", Slug: "cars-trucks", Level: 1, ParentID: &parent, IsActive: true}
	require.NoError(t, db.Create(&f.Cars).Error)

	cars, phones := f.Cars.ID, f.Phones.ID
	fields := []models.CategoryField{
		{CategoryID: &cars, Attribute: "year", Name: "Year", ValueType: models.ValueTypeInteger, IsMandatory: true,
			MinValue: floatPtr(1990), MaxValue: floatPtr(2025), DisplayPriority: 1},
		{CategoryID: &cars, Attribute: "condition", Name: "Condition", ValueType: models.ValueTypeEnum, IsMandatory: true,
			DisplayPriority: 2, Options: []models.CategoryFieldOption{
				{Value: "used", Label: "Used", DisplayPriority: 2},
				{Value: "new", Label: "New", DisplayPriority: 1},
			}},
		{CategoryID: &cars, Attribute: "mileage", Name: "Mileage", ValueType: models.ValueTypeFloat,
			MinValue: floatPtr(0), DisplayPriority: 3},
		{CategoryID: &cars, Attribute: "is_negotiable", Name: "Negotiable", ValueType: models.ValueTypeBoolean, DisplayPriority: 4},
		{CategoryID: &cars, Attribute: "vin", Name: "VIN", ValueType: models.ValueTypeString,
			MinLength: intPtr(17), MaxLength: intPtr(17), DisplayPriority: 5},
		{CategoryID: &cars, Attribute: "internal_code", Name: "Internal code", ValueType: models.ValueTypeString, IsMandatory: true,
			Roles: datatypes.JSONSlice[string]{models.RoleExcludeFromPost}, DisplayPriority: 6},
		{CategoryID: &cars, Attribute: "legacy_trim", Name: "Trim", ValueType: models.ValueTypeString, IsMandatory: true,
			State: models.FieldStateInactive, DisplayPriority: 7},
		{CategoryID: &phones, Attribute: "storage_gb", Name: "Storage (GB)", ValueType: models.ValueTypeInteger,
			MinValue: floatPtr(1), DisplayPriority: 1},
		{Attribute: "contact_hours", Name: "Contact hours", ValueType: models.ValueTypeEnum, DisplayPriority: 90},
	}

	for i := range fields {
		require.NoError(t, db.Create(&fields[i]).Error)
		f.Fields[fields[i].Attribute] = fields[i]
	}
	return f
}

// CarInput input ที่ผ่าน validation สำหรับ Cars
func (f *Fixture) CarInput() map[string]any {
	return map[string]any{
		"category_id": f.Cars.ID.String(),
		"title":       "Honda Civic 2020",
		"description": "One owner, full service history.",
		"price":       450000.0,
		"year":        2020.0,
		"condition":   "used",
	}
}
