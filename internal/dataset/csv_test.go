package dataset

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const sampleCSV = "\ufeffAge,Department,EmployeeNumber,MonthlyIncome,OverTime,BusinessTravel,StockOptionLevel\n" +
	"41,Sales,1,5993,Yes,Travel_Rarely,0\n" +
	",,,,,,\n" +
	"49,Research & Development,2,5130,No,Travel_Frequently,1\n" +
	"abc,Research & Development,4,2090.5,Yes,,0\n"

func TestParseCSV(t *testing.T) {
	t.Parallel()

	records, report, err := ParseCSV(strings.NewReader(sampleCSV), HRAttritionSchema())
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 || report.Rows != 3 {
		t.Fatalf("expected 3 records, got %d (report rows %d)", len(records), report.Rows)
	}
	if report.SkippedRows != 1 {
		t.Errorf("skipped rows = %d, want 1", report.SkippedRows)
	}
	if report.Columns[0] != ColumnAge {
		t.Errorf("BOM not stripped from first header: %q", report.Columns[0])
	}

	first := records[0]
	if age, ok := first.Int(ColumnAge); !ok || age != 41 {
		t.Errorf("age = %v %v", age, ok)
	}
	if income, ok := first.Float(ColumnMonthlyIncome); !ok || income != 5993 {
		t.Errorf("income = %v %v", income, ok)
	}
	if dept, _ := first.String(ColumnDepartment); dept != "Sales" {
		t.Errorf("department = %q", dept)
	}
	if travel, ok := first.Value("BusinessTravel"); !ok || travel != "Travel_Rarely" {
		t.Errorf("undeclared string column = %v %v", travel, ok)
	}
	if stock, ok := first.Value("StockOptionLevel"); !ok || stock != float64(0) {
		t.Errorf("undeclared numeric column = %#v %v", stock, ok)
	}
}

func TestParseCSV_FieldErrorsAreReported(t *testing.T) {
	t.Parallel()

	records, report, err := ParseCSV(strings.NewReader(sampleCSV), HRAttritionSchema())
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if report.FieldErrorCount() != 1 {
		t.Fatalf("field errors = %d, want 1", report.FieldErrorCount())
	}
	fieldErr := report.FieldErrors[0]
	if fieldErr.Row != 4 || fieldErr.Column != ColumnAge || fieldErr.Value != "abc" || fieldErr.Type != Int {
		t.Fatalf("unexpected field error: %+v", fieldErr)
	}

	last := records[2]
	if last.Has(ColumnAge) {
		t.Errorf("failed field should be absent")
	}
	if last.Has("BusinessTravel") {
		t.Errorf("empty cell should be absent")
	}
	if id, ok := last.Int(ColumnEmployeeNumber); !ok || id != 4 {
		t.Errorf("row continued after field error: id=%v", id)
	}
}

func TestParseCSV_IntegralFloatForIntColumn(t *testing.T) {
	t.Parallel()

	records, report, err := ParseCSV(strings.NewReader("EmployeeNumber,Age\n7,31.0\n8,31.5\n"), HRAttritionSchema())
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if age, ok := records[0].Int(ColumnAge); !ok || age != 31 {
		t.Errorf("age = %v %v", age, ok)
	}
	if report.FieldErrorCount() != 1 || records[1].Has(ColumnAge) {
		t.Errorf("non-integral value should be a field error")
	}
}

func TestParseCSV_NonFiniteNumbersAreFieldErrors(t *testing.T) {
	t.Parallel()

	input := "EmployeeNumber,Department,JobRole,MonthlyIncome,JobSatisfaction,Age,Score\n" +
		"1,R&D,Sci,NaN,3,Inf,-Infinity\n" +
		"2,R&D,Sci,4000,+Inf,30,1.5\n"
	records, report, err := ParseCSV(strings.NewReader(input), HRAttritionSchema())
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if report.FieldErrorCount() != 3 {
		t.Fatalf("field errors = %d, want 3: %+v", report.FieldErrorCount(), report.FieldErrors)
	}
	if records[0].Has(ColumnMonthlyIncome) || records[0].Has(ColumnAge) || records[1].Has(ColumnJobSatisfaction) {
		t.Errorf("non-finite values must be absent")
	}
	if score, ok := records[0].Value("Score"); !ok || score != "-Infinity" {
		t.Errorf("undeclared non-finite column = %#v %v, want kept as string", score, ok)
	}
	if satisfaction, ok := records[0].Int(ColumnJobSatisfaction); !ok || satisfaction != 3 {
		t.Errorf("row continued after field error: satisfaction=%v", satisfaction)
	}
}

func TestRecord_NonFiniteFloatIsAbsent(t *testing.T) {
	t.Parallel()

	record := NewRecord(map[string]any{"a": math.NaN(), "b": math.Inf(1), "c": 2.5})
	if _, ok := record.Float("a"); ok {
		t.Error("NaN should be absent")
	}
	if _, ok := record.Float("b"); ok {
		t.Error("+Inf should be absent")
	}
	if _, ok := record.Int("b"); ok {
		t.Error("+Inf should not be an int")
	}
	if v, ok := record.Float("c"); !ok || v != 2.5 {
		t.Errorf("c = %v %v", v, ok)
	}
}

func TestParseCSV_Rejects(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input string
		want  error
	}{
		"empty":            {input: "", want: errEmptyResource},
		"no known columns": {input: "foo,bar\n1,2\n", want: errNoKnownColumn},
	}
	for name, tc := range cases {
		if _, _, err := ParseCSV(strings.NewReader(tc.input), HRAttritionSchema()); !errors.Is(err, tc.want) {
			t.Errorf("%s: err = %v, want %v", name, err, tc.want)
		}
	}
}
