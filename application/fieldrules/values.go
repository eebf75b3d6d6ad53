package fieldrules

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// IsEmpty absent / null / "" (รวม whitespace ล้วน) นับเป็นไม่ได้ส่งค่า
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

// AsInteger ค่าที่เป็นจำนวนเต็ม: int ทุกชนิด, float ที่ไม่มีเศษ, string ฐาน 10
func AsInteger(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case float32:
		return wholeFloat(float64(n))
	case float64:
		return wholeFloat(n)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func wholeFloat(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// AsNumber ค่าตัวเลขจำกัด (finite); string ต้องเป็นเลขฐาน 10 ไม่รับ hex / inf / nan
func AsNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, isFinite(n)
	case float32:
		return float64(n), isFinite(float64(n))
	case string:
		s := strings.TrimSpace(n)
		if s == "" || strings.ContainsAny(s, "xXpP_") {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !isFinite(f) {
			return 0, false
		}
		return f, true
	}
	if i, ok := AsInteger(v); ok {
		return float64(i), true
	}
	return 0, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// AsBoolean คำที่ยอมรับ (case-sensitive): true false 1 0 "1" "0" "true" "false" "yes" "no"
func AsBoolean(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		switch b {
		case "1", "true", "yes":
			return true, true
		case "0", "false", "no":
			return false, true
		}
		return false, false
	}
	if i, ok := AsInteger(v); ok {
		switch i {
		case 1:
			return true, true
		case 0:
			return false, true
		}
	}
	return false, false
}

// Length จำนวนตัวอักษร (rune) ไม่ใช่ byte
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
