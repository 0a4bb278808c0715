package dataset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileLoader 從本機檔案載入員工資料（.csv / .xlsx）
type FileLoader struct {
	path   string
	sheet  string
	schema Schema
}

func NewFileLoader(path, sheet string, schema Schema) *FileLoader {
	return &FileLoader{path: path, sheet: sheet, schema: schema}
}

func (l *FileLoader) Path() string {
	return l.path
}

// Load 任何失敗都包成 *LoadError，由呼叫端決定是否改用預設資料
func (l *FileLoader) Load(ctx context.Context) ([]Record, Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, Report{}, &LoadError{Path: l.path, Err: err}
	}
	file, err := os.Open(l.path)
	if err != nil {
		return nil, Report{}, &LoadError{Path: l.path, Err: err}
	}
	defer file.Close()

	var (
		records []Record
		report  Report
	)
	switch strings.ToLower(filepath.Ext(l.path)) {
	case ".xlsx", ".xlsm":
		records, report, err = ParseXLSX(file, l.sheet, l.schema)
	default:
		records, report, err = ParseCSV(file, l.schema)
	}
	if err != nil {
		return nil, report, &LoadError{Path: l.path, Err: err}
	}
	return records, report, nil
}
