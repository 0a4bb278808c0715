package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// ParseCSV reads a header row followed by one record per data row.
// Malformed rows are counted as skipped; only an unreadable header fails the parse.
func ParseCSV(reader io.Reader, schema Schema) ([]Record, Report, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, Report{}, errEmptyResource
	}
	if err != nil {
		return nil, Report{}, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	decoder, err := newRowDecoder(header, schema)
	if err != nil {
		return nil, Report{}, err
	}

	records := make([]Record, 0, 64)
	for {
		row, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				decoder.line++
				decoder.report.SkippedRows++
				continue
			}
			return nil, decoder.report, err
		}
		if record, ok := decoder.decode(row); ok {
			records = append(records, record)
		}
	}
	return records, decoder.report, nil
}
