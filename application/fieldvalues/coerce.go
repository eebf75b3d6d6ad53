// Package fieldvalues แปลงค่าที่ validate แล้วเป็นแถว EAV และแปลงกลับตอนอ่าน
package fieldvalues

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"ads-api/application/fieldrules"
	"ads-api/domain/models"
)

// falseWords ค่า string ที่ถือว่า false (เทียบแบบ lowercase)
var falseWords = map[string]struct{}{
	"false": {},
	"0":     {},
	"no":    {},
	"off":   {},
	"":      {},
}

type Coercer struct {
	defs fieldrules.DefinitionSource
}

func NewCoercer(defs fieldrules.DefinitionSource) *Coercer {
	return &Coercer{defs: defs}
}

// Coerce แถวละ attribute ที่รู้จัก ไม่ถูก exclude และมีค่า (ไม่ null / ไม่ใช่ "")
// key ที่ไม่รู้จักหรือถูก exclude ถูกทิ้งเงียบ ๆ; ลำดับตาม definitions
func (c *Coercer) Coerce(ctx context.Context, categoryID uuid.UUID, input map[string]any) ([]models.AdFieldValue, error) {
	defs, err := c.defs.DefinitionsForCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("load field definitions: %w", err)
	}

	rows := make([]models.AdFieldValue, 0, len(defs))
	for i := range defs {
		def := &defs[i]
		if def.IsExcludedFromPost() || fieldrules.IsStaticKey(def.Attribute) {
			continue
		}

		raw, ok := input[def.Attribute]
		if !ok || fieldrules.IsEmpty(raw) {
			continue
		}

		row, err := CoerceValue(def, raw)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// CoerceValue ใส่ค่าลงคอลัมน์ตาม value type ของ definition
func CoerceValue(def *models.CategoryField, raw any) (models.AdFieldValue, error) {
	row := models.AdFieldValue{CategoryFieldID: def.ID}

	switch def.ValueType {
	case models.ValueTypeInteger:
		n, err := toInteger(raw)
		if err != nil {
			return row, fmt.Errorf("coerce %s: %w", def.Attribute, err)
		}
		row.ValueInteger = &n
	case models.ValueTypeFloat:
		f, ok := fieldrules.AsNumber(raw)
		if !ok {
			return row, fmt.Errorf("coerce %s: %v is not a number", def.Attribute, raw)
		}
		row.ValueFloat = &f
	case models.ValueTypeBoolean:
		b := toBoolean(raw)
		row.ValueBoolean = &b
	case models.ValueTypeString, models.ValueTypeEnum:
		s := toText(raw)
		row.ValueString = &s
	default:
		return row, fmt.Errorf("coerce %s: unknown value type %q", def.Attribute, def.ValueType)
	}

	return row, nil
}

// toInteger ตัดเศษทิ้ง (ไม่ปัด)
func toInteger(raw any) (int64, error) {
	if b, ok := raw.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, nil
	}
	if n, ok := fieldrules.AsInteger(raw); ok {
		return n, nil
	}
	f, ok := fieldrules.AsNumber(raw)
	if !ok || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%v is not an integer", raw)
	}
	return int64(math.Trunc(f)), nil
}

func toBoolean(raw any) bool {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		_, isFalse := falseWords[strings.ToLower(strings.TrimSpace(v))]
		return !isFalse
	}
	if f, ok := fieldrules.AsNumber(raw); ok {
		return f != 0
	}
	return raw != nil
}

func toText(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprint(raw)
}
