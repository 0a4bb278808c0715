package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX 讀取活頁簿中的一張工作表；sheet 為空時取第一張
func ParseXLSX(reader io.Reader, sheet string, schema Schema) ([]Record, Report, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to open excel: %w", err)
	}
	defer file.Close()

	if sheet == "" {
		sheets := file.GetSheetList()
		if len(sheets) == 0 {
			return nil, Report{}, errEmptyResource
		}
		sheet = sheets[0]
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, Report{}, errEmptyResource
	}

	decoder, err := newRowDecoder(rows[0], schema)
	if err != nil {
		return nil, Report{}, err
	}
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if record, ok := decoder.decode(row); ok {
			records = append(records, record)
		}
	}
	return records, decoder.report, nil
}
