package fieldrules

import (
	"strconv"
	"strings"
)

// Rule ชื่อ rule ที่ใช้เลือก message (key ของ custom message คือ "<field>.<rule>")
type Rule string

const (
	RuleRequired     Rule = "required"
	RuleInteger      Rule = "integer"
	RuleNumeric      Rule = "numeric"
	RuleString       Rule = "string"
	RuleBoolean      Rule = "boolean"
	RuleMin          Rule = "min"
	RuleMax          Rule = "max"
	RuleBetween      Rule = "between"
	RuleMinLength    Rule = "min_length"
	RuleMaxLength    Rule = "max_length"
	RuleBetweenChars Rule = "between_length"
	RuleIn           Rule = "in"
	RuleExists       Rule = "exists"
)

// CustomMessages ข้อความเฉพาะของ static fields
var CustomMessages = map[string]string{
	"category_id.required":   "Please select a category.",
	"category_id.exists":     "The selected category does not exist.",
	"title.required":         "Ad title is required.",
	"title.max_length":       "Title cannot exceed 255 characters.",
	"description.required":   "Ad description is required.",
	"description.max_length": "Description cannot exceed 5000 characters.",
	"price.numeric":          "Price must be a valid number.",
	"price.min":              "Price cannot be negative.",
	"price.max":              "Price is too high.",
}

var defaultMessages = map[Rule]string{
	RuleRequired:     "The :attribute field is required.",
	RuleInteger:      "The :attribute field must be an integer.",
	RuleNumeric:      "The :attribute field must be a number.",
	RuleString:       "The :attribute field must be a string.",
	RuleBoolean:      "The :attribute field must be true or false.",
	RuleMin:          "The :attribute field must be at least :min.",
	RuleMax:          "The :attribute field must not be greater than :max.",
	RuleBetween:      "The :attribute field must be between :min and :max.",
	RuleMinLength:    "The :attribute field must be at least :min characters.",
	RuleMaxLength:    "The :attribute field must not be greater than :max characters.",
	RuleBetweenChars: "The :attribute field must be between :min and :max characters.",
	RuleIn:           "The selected :attribute is invalid.",
	RuleExists:       "The selected :attribute is invalid.",
}

type failure struct {
	rule Rule
	side Rule // min/max ที่พังจริงเมื่อ rule เป็น between
	min  *float64
	max  *float64
}

func message(key, label string, f failure) string {
	tmpl, ok := CustomMessages[key+"."+string(f.rule)]
	if !ok && f.side != "" {
		tmpl, ok = CustomMessages[key+"."+string(f.side)]
	}
	if !ok {
		tmpl = defaultMessages[f.rule]
	}

	r := strings.NewReplacer(
		":attribute", label,
		":min", formatBound(f.min),
		":max", formatBound(f.max),
	)
	return r.Replace(tmpl)
}

func formatBound(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
