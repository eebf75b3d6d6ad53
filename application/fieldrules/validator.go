package fieldrules

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// ValidationErrors key -> messages ทุกข้อที่ไม่ผ่าน
type ValidationErrors map[string][]string

func (e ValidationErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e[k], " "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e ValidationErrors) add(key, msg string) {
	e[key] = append(e[key], msg)
}

// CategoryChecker ตรวจว่า category มีอยู่และ active
type CategoryChecker interface {
	ExistsActive(ctx context.Context, id uuid.UUID) (bool, error)
}

type Validator struct {
	builder    *Builder
	categories CategoryChecker
}

func NewValidator(builder *Builder, categories CategoryChecker) *Validator {
	return &Validator{builder: builder, categories: categories}
}

// Validate ตรวจ input ตาม static ∪ dynamic rules ของ category ใน input
// คืน ValidationErrors ว่าง (nil) เมื่อผ่าน; error แยกไว้สำหรับปัญหา infra
func (v *Validator) Validate(ctx context.Context, input map[string]any) (ValidationErrors, error) {
	categoryID, hasCategory := ParseCategoryID(input)

	var scope *uuid.UUID
	if hasCategory {
		scope = &categoryID
	}

	set, err := v.builder.Build(ctx, scope)
	if err != nil {
		return nil, err
	}

	errs := ValidationErrors{}
	for key, constraints := range set.Rules {
		failures, err := v.check(ctx, input[key], constraints)
		if err != nil {
			return nil, err
		}
		for _, f := range failures {
			errs.add(key, message(key, set.Labels[key], f))
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}

// ParseCategoryID อ่าน category_id จาก input (string uuid)
func ParseCategoryID(input map[string]any) (uuid.UUID, bool) {
	s, ok := input[KeyCategoryID].(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// check presence ก่อน แล้ว type; type ไม่ผ่านจะไม่ตรวจ bounds ต่อ
func (v *Validator) check(ctx context.Context, value any, constraints []Constraint) ([]failure, error) {
	var failures []failure

	for _, c := range constraints {
		switch c.Kind {
		case KindRequired:
			if IsEmpty(value) {
				return []failure{{rule: RuleRequired}}, nil
			}
		case KindOptional:
			if IsEmpty(value) {
				return nil, nil
			}
		case KindInteger:
			if _, ok := AsInteger(value); !ok {
				return append(failures, failure{rule: RuleInteger}), nil
			}
		case KindNumeric:
			if _, ok := AsNumber(value); !ok {
				return append(failures, failure{rule: RuleNumeric}), nil
			}
		case KindString:
			if _, ok := value.(string); !ok {
				return append(failures, failure{rule: RuleString}), nil
			}
		case KindBoolean:
			if _, ok := AsBoolean(value); !ok {
				return append(failures, failure{rule: RuleBoolean}), nil
			}
		case KindRange:
			n, ok := AsNumber(value)
			if !ok {
				return append(failures, failure{rule: RuleNumeric}), nil
			}
			if f, bad := outOfRange(n, c, RuleMin, RuleMax, RuleBetween); bad {
				failures = append(failures, f)
			}
		case KindLength:
			s, ok := value.(string)
			if !ok {
				return append(failures, failure{rule: RuleString}), nil
			}
			if f, bad := outOfRange(float64(Length(s)), c, RuleMinLength, RuleMaxLength, RuleBetweenChars); bad {
				failures = append(failures, f)
			}
		case KindIn:
			s, ok := value.(string)
			if !ok || !slices.Contains(c.Values, s) {
				failures = append(failures, failure{rule: RuleIn})
			}
		case KindCategory:
			exists, err := v.categoryExists(ctx, value)
			if err != nil {
				return nil, err
			}
			if !exists {
				failures = append(failures, failure{rule: RuleExists})
			}
		default:
			return nil, fmt.Errorf("unhandled constraint kind %q", c.Kind)
		}
	}

	return failures, nil
}

// outOfRange มีทั้งสองด้าน = between; side เก็บด้านที่พังไว้หา custom message
func outOfRange(n float64, c Constraint, minRule, maxRule, betweenRule Rule) (failure, bool) {
	low := c.Min != nil && n < *c.Min
	high := c.Max != nil && n > *c.Max
	if !low && !high {
		return failure{}, false
	}

	f := failure{min: c.Min, max: c.Max, side: maxRule}
	if low {
		f.side = minRule
	}
	f.rule = f.side
	if c.Min != nil && c.Max != nil {
		f.rule = betweenRule
	}
	return f, true
}

// categoryExists uuid ผิดรูปแบบ = ไม่มี (ไม่ใช่ error)
func (v *Validator) categoryExists(ctx context.Context, value any) (bool, error) {
	s, ok := value.(string)
	if !ok {
		return false, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return false, nil
	}
	exists, err := v.categories.ExistsActive(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check category: %w", err)
	}
	return exists, nil
}
