package fieldvalues

import (
	"errors"
	"fmt"

	"ads-api/domain/models"
)

// ErrIntegrity แถวในฐานข้อมูลไม่ตรงกับ definition (อ่านไม่ได้ ไม่เดา)
var ErrIntegrity = errors.New("field value integrity violation")

// Project แปลงแถวกลับเป็นค่าชนิดจริง keyed by attribute
func Project(rows []models.AdFieldValue) (map[string]models.ProjectedValue, error) {
	out := make(map[string]models.ProjectedValue, len(rows))
	for i := range rows {
		row := &rows[i]
		def := row.CategoryField
		if def == nil {
			return nil, fmt.Errorf("%w: row %s has no definition", ErrIntegrity, row.ID)
		}

		value, err := projectValue(row, def)
		if err != nil {
			return nil, err
		}

		out[def.Attribute] = models.ProjectedValue{
			Name:  def.Name,
			Value: value,
			Type:  def.ValueType,
		}
	}
	return out, nil
}

func projectValue(row *models.AdFieldValue, def *models.CategoryField) (any, error) {
	if n := row.PopulatedColumns(); n != 1 {
		return nil, fmt.Errorf("%w: %s has %d populated columns", ErrIntegrity, def.Attribute, n)
	}

	switch def.ValueType {
	case models.ValueTypeInteger:
		if row.ValueInteger != nil {
			return *row.ValueInteger, nil
		}
	case models.ValueTypeFloat:
		if row.ValueFloat != nil {
			return *row.ValueFloat, nil
		}
	case models.ValueTypeBoolean:
		if row.ValueBoolean != nil {
			return *row.ValueBoolean, nil
		}
	case models.ValueTypeString, models.ValueTypeEnum:
		if row.ValueString != nil {
			return *row.ValueString, nil
		}
	default:
		return nil, fmt.Errorf("%w: %s has unknown value type %q", ErrIntegrity, def.Attribute, def.ValueType)
	}

	return nil, fmt.Errorf("%w: %s (%s) stored in the wrong column", ErrIntegrity, def.Attribute, def.ValueType)
}
