package dataset

import "math"

// Record 單列資料：欄位名 → 已轉型的值（int / float64 / string）
// 缺值或轉型失敗的欄位不會出現在 Record 中
type Record struct {
	values map[string]any
}

func NewRecord(values map[string]any) Record {
	copied := make(map[string]any, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return Record{values: copied}
}

func (r Record) Has(column string) bool {
	_, ok := r.values[column]
	return ok
}

func (r Record) Len() int {
	return len(r.values)
}

// Value returns the typed value of a column.
func (r Record) Value(column string) (any, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Int 取整數欄位；整數值的 float 也可接受
func (r Record) Int(column string) (int, bool) {
	switch v := r.values[column].(type) {
	case int:
		return v, true
	case float64:
		if !math.IsInf(v, 0) && v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

// Float 取數值欄位；NaN / Inf 視為缺值
func (r Record) Float(column string) (float64, bool) {
	switch v := r.values[column].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func (r Record) String(column string) (string, bool) {
	v, ok := r.values[column].(string)
	return v, ok
}
