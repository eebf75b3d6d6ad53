// Package fieldrules สร้างชุด rule ของฟอร์มลงประกาศจาก static fields + definitions ของ category
// แล้วตรวจ input แบบเก็บ error ครบทุก key
package fieldrules

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"ads-api/domain/models"
	"ads-api/pkg/logger"
)

type Kind string

const (
	KindRequired Kind = "required"
	KindOptional Kind = "optional" // absent / null / "" ผ่าน และข้าม rule ที่เหลือ
	KindInteger  Kind = "integer"
	KindNumeric  Kind = "numeric"
	KindString   Kind = "string"
	KindBoolean  Kind = "boolean"
	KindRange    Kind = "range"  // ค่าตัวเลขใน [Min, Max] (inclusive)
	KindLength   Kind = "length" // จำนวนตัวอักษรใน [Min, Max] (inclusive)
	KindIn       Kind = "in"
	KindCategory Kind = "category" // uuid ของ category ที่มีอยู่และ active
)

// Constraint rule หนึ่งตัว; Min/Max nil = ไม่จำกัดด้านนั้น
type Constraint struct {
	Kind   Kind
	Min    *float64
	Max    *float64
	Values []string
}

// Static keys ของ ad เอง
const (
	KeyCategoryID  = "category_id"
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyPrice       = "price"
	KeyStatus      = "status"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 5000
	MaxPrice             = 1_000_000_000
)

// PostableStatuses สถานะที่ตั้งได้ตอนสร้าง
var PostableStatuses = []string{string(models.AdStatusDraft), string(models.AdStatusPublished)}

func ptr(f float64) *float64 { return &f }

// StaticRules rule ของ static keys (ไม่ถูก dynamic definitions ทับ)
func StaticRules() map[string][]Constraint {
	return map[string][]Constraint{
		KeyCategoryID:  {{Kind: KindRequired}, {Kind: KindCategory}},
		KeyTitle:       {{Kind: KindRequired}, {Kind: KindString}, {Kind: KindLength, Max: ptr(MaxTitleLength)}},
		KeyDescription: {{Kind: KindRequired}, {Kind: KindString}, {Kind: KindLength, Max: ptr(MaxDescriptionLength)}},
		KeyPrice:       {{Kind: KindOptional}, {Kind: KindNumeric}, {Kind: KindRange, Min: ptr(0), Max: ptr(MaxPrice)}},
		KeyStatus:      {{Kind: KindOptional}, {Kind: KindIn, Values: PostableStatuses}},
	}
}

func StaticLabels() map[string]string {
	return map[string]string{
		KeyCategoryID:  "category",
		KeyTitle:       "title",
		KeyDescription: "description",
		KeyPrice:       "price",
		KeyStatus:      "status",
	}
}

func IsStaticKey(key string) bool {
	_, ok := StaticLabels()[key]
	return ok
}

// DefinitionSource แหล่ง definitions (FieldDefinitionService)
type DefinitionSource interface {
	DefinitionsForCategory(ctx context.Context, categoryID uuid.UUID) ([]models.CategoryField, error)
}

// RuleSet rule + label ต่อ key
type RuleSet struct {
	Rules  map[string][]Constraint
	Labels map[string]string
}

type Builder struct {
	defs DefinitionSource
}

func NewBuilder(defs DefinitionSource) *Builder {
	return &Builder{defs: defs}
}

// Build static ∪ dynamic; categoryID nil = static อย่างเดียว
func (b *Builder) Build(ctx context.Context, categoryID *uuid.UUID) (*RuleSet, error) {
	set := &RuleSet{Rules: StaticRules(), Labels: StaticLabels()}
	if categoryID == nil {
		return set, nil
	}

	defs, err := b.defs.DefinitionsForCategory(ctx, *categoryID)
	if err != nil {
		return nil, fmt.Errorf("load field definitions: %w", err)
	}

	for i := range defs {
		def := &defs[i]
		if def.IsExcludedFromPost() {
			continue
		}
		if IsStaticKey(def.Attribute) {
			logger.WarnContext(ctx, "Field definition collides with static key, ignored",
				"category_id", categoryID.String(),
				"attribute", def.Attribute,
				"field_id", def.ID.String(),
			)
			continue
		}

		constraints, ok := DefinitionConstraints(def)
		if !ok {
			logger.WarnContext(ctx, "Field definition has unknown value type, ignored",
				"attribute", def.Attribute,
				"value_type", string(def.ValueType),
			)
			continue
		}

		set.Rules[def.Attribute] = constraints
		set.Labels[def.Attribute] = labelFor(def)
	}

	return set, nil
}

// BuildRules เฉพาะ rules
func (b *Builder) BuildRules(ctx context.Context, categoryID uuid.UUID) (map[string][]Constraint, error) {
	set, err := b.Build(ctx, &categoryID)
	if err != nil {
		return nil, err
	}
	return set.Rules, nil
}

// BuildLabels attribute -> ชื่อที่แสดงใน message
func (b *Builder) BuildLabels(ctx context.Context, categoryID uuid.UUID) (map[string]string, error) {
	set, err := b.Build(ctx, &categoryID)
	if err != nil {
		return nil, err
	}
	return set.Labels, nil
}

// DefinitionConstraints แปลง definition เป็น constraints; false เมื่อ value type ไม่รู้จัก
func DefinitionConstraints(def *models.CategoryField) ([]Constraint, bool) {
	presence := Constraint{Kind: KindOptional}
	if def.IsMandatory {
		presence = Constraint{Kind: KindRequired}
	}
	out := []Constraint{presence}

	switch def.ValueType {
	case models.ValueTypeInteger:
		out = append(out, Constraint{Kind: KindInteger})
		if def.MinValue != nil || def.MaxValue != nil {
			out = append(out, Constraint{Kind: KindRange, Min: def.MinValue, Max: def.MaxValue})
		}
	case models.ValueTypeFloat:
		out = append(out, Constraint{Kind: KindNumeric})
		if def.MinValue != nil || def.MaxValue != nil {
			out = append(out, Constraint{Kind: KindRange, Min: def.MinValue, Max: def.MaxValue})
		}
	case models.ValueTypeString:
		out = append(out, Constraint{Kind: KindString})
		if def.MinLength != nil || def.MaxLength != nil {
			out = append(out, Constraint{Kind: KindLength, Min: intPtr(def.MinLength), Max: intPtr(def.MaxLength)})
		}
	case models.ValueTypeEnum:
		out = append(out, Constraint{Kind: KindString})
		// ไม่มี options = รับ string อะไรก็ได้
		if values := def.OptionValues(); len(values) > 0 {
			out = append(out, Constraint{Kind: KindIn, Values: values})
		}
	case models.ValueTypeBoolean:
		out = append(out, Constraint{Kind: KindBoolean})
	default:
		return nil, false
	}

	return out, true
}

func intPtr(i *int) *float64 {
	if i == nil {
		return nil
	}
	f := float64(*i)
	return &f
}

func labelFor(def *models.CategoryField) string {
	if def.Name != "" {
		return def.Name
	}
	return def.Attribute
}

// String รูปแบบ rule แบบ "between:1990,2025" / "in:a,b" สำหรับแสดงผล
func (c Constraint) String() string {
	switch c.Kind {
	case KindRange, KindLength:
		prefix := "between"
		if c.Kind == KindLength {
			prefix = "length"
		}
		return prefix + ":" + formatBound(c.Min) + "," + formatBound(c.Max)
	case KindIn:
		return "in:" + strings.Join(c.Values, ",")
	case KindCategory:
		return "exists:categories,id"
	default:
		return string(c.Kind)
	}
}
