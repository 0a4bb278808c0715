package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileLoader_CSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "employees.csv")
	if err := os.WriteFile(path, []byte("EmployeeNumber,Department\n1,Sales\n2,HR\n"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	loader := NewFileLoader(path, "", HRAttritionSchema())
	records, report, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 2 || report.Rows != 2 || loader.Path() != path {
		t.Fatalf("unexpected load result: %d records, report %+v", len(records), report)
	}
}

func TestFileLoader_XLSX(t *testing.T) {
	t.Parallel()

	buf := workbook(t, "Sheet1", [][]any{
		{"EmployeeNumber", "Department"},
		{1, "Sales"},
	})
	path := filepath.Join(t.TempDir(), "employees.xlsx")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	records, _, err := NewFileLoader(path, "", HRAttritionSchema()).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestFileLoader_LoadError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "broken.xlsx")
	if err := os.WriteFile(garbage, []byte("not a workbook"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cases := map[string]string{
		"missing file":   filepath.Join(dir, "missing.csv"),
		"not a workbook": garbage,
	}
	for name, path := range cases {
		_, _, err := NewFileLoader(path, "", HRAttritionSchema()).Load(context.Background())
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Errorf("%s: expected *LoadError, got %v", name, err)
			continue
		}
		if loadErr.Path != path {
			t.Errorf("%s: path = %q, want %q", name, loadErr.Path, path)
		}
	}
}

func TestFileLoader_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewFileLoader("employees.csv", "", HRAttritionSchema()).Load(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
