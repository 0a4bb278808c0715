package dataset

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	errEmptyResource = errors.New("resource has no header row")
	errNoKnownColumn = errors.New("header contains none of the schema columns")
)

// rowDecoder 以 header 與 schema 將字串列轉成 Record，並累計 Report
type rowDecoder struct {
	schema  Schema
	columns []string
	report  Report
	line    int
}

func newRowDecoder(header []string, schema Schema) (*rowDecoder, error) {
	columns := make([]string, len(header))
	known := 0
	for i, h := range header {
		name := strings.TrimSpace(h)
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		columns[i] = name
		if _, ok := schema[name]; ok {
			known++
		}
	}
	if len(columns) == 0 || (len(columns) == 1 && columns[0] == "") {
		return nil, errEmptyResource
	}
	if len(schema) > 0 && known == 0 {
		return nil, errNoKnownColumn
	}
	return &rowDecoder{
		schema:  schema,
		columns: columns,
		report:  Report{Columns: columns},
	}, nil
}

// decode 回傳 false 代表空白列已略過
func (d *rowDecoder) decode(row []string) (Record, bool) {
	d.line++
	if isBlank(row) {
		d.report.SkippedRows++
		return Record{}, false
	}

	values := make(map[string]any, len(d.columns))
	for i, raw := range row {
		if i >= len(d.columns) {
			break
		}
		column := d.columns[i]
		if column == "" {
			continue
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		fieldType, declared := d.schema[column]
		if !declared {
			values[column] = opportunistic(raw)
			continue
		}
		value, err := coerce(raw, fieldType)
		if err != nil {
			d.report.FieldErrors = append(d.report.FieldErrors, &FieldError{
				Row:    d.line,
				Column: column,
				Value:  raw,
				Type:   fieldType,
			})
			continue
		}
		values[column] = value
	}
	d.report.Rows++
	return Record{values: values}, true
}

func coerce(raw string, fieldType FieldType) (any, error) {
	switch fieldType {
	case Int:
		if n, err := strconv.Atoi(raw); err == nil {
			return n, nil
		}
		f, err := parseFinite(raw)
		if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
			return nil, strconv.ErrSyntax
		}
		return int(f), nil
	case Float:
		return parseFinite(raw)
	default:
		return raw, nil
	}
}

// opportunistic 未宣告的欄位：看起來像數字就轉 float64，否則保留字串
func opportunistic(raw string) any {
	if f, err := parseFinite(raw); err == nil {
		return f
	}
	return raw
}

// parseFinite ParseFloat 會接受 NaN / Inf，這裡一律視為格式錯誤
func parseFinite(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return f, nil
}

func isBlank(row []string) bool {
	for _, field := range row {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
