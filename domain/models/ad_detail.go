package models

// ProjectedValue ค่า attribute ที่แปลงกลับเป็นชนิดจริงแล้ว (int64 / float64 / bool / string)
type ProjectedValue struct {
	Name  string    `json:"name"`
	Value any       `json:"value"`
	Type  ValueType `json:"type"`
}

// AdDetail ad พร้อม dynamic fields ที่ project แล้ว keyed by attribute
type AdDetail struct {
	Ad            *Ad
	DynamicFields map[string]ProjectedValue
}
