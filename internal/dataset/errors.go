package dataset

import "fmt"

// LoadError 資源無法讀取或不是可解析的表格文字
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("dataset: load failed: %v", e.Err)
	}
	return fmt.Sprintf("dataset: load %s failed: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// FieldError 單一欄位無法轉成 schema 宣告的型別；該欄位視為缺值，不中斷載入
type FieldError struct {
	Row    int // 1-based data row, header excluded
	Column string
	Value  string
	Type   FieldType
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("dataset: row %d column %q: cannot coerce %q to %s", e.Row, e.Column, e.Value, e.Type)
}

// Report 載入摘要
type Report struct {
	Columns     []string      `json:"columns"`
	Rows        int           `json:"rows"`
	SkippedRows int           `json:"skippedRows"`
	FieldErrors []*FieldError `json:"-"`
}

func (r Report) FieldErrorCount() int {
	return len(r.FieldErrors)
}
