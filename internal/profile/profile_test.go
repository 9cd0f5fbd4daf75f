package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestCSV(t *testing.T, content string) *Dataset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	d, err := Open(path)
	if err != nil {
		t.Fatalf("open dataset: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestProfile_ColumnKinds(t *testing.T) {
	d := openTestCSV(t, "state,total_cases,rate,reported_on\nTexas,30000,1.5,2021-03-01\nOhio,20000,0.9,2021-03-02\n")

	p, err := d.Profile()
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if len(p.CategoricalColumns) != 1 || p.CategoricalColumns[0] != "state" {
		t.Errorf("categorical = %v", p.CategoricalColumns)
	}
	if len(p.NumericColumns) != 2 {
		t.Errorf("numeric = %v, want total_cases and rate", p.NumericColumns)
	}
	if len(p.DatetimeColumns) != 1 || p.DatetimeColumns[0] != "reported_on" {
		t.Errorf("datetime = %v", p.DatetimeColumns)
	}
}

func TestHead_RowsInFileOrder(t *testing.T) {
	d := openTestCSV(t, "state,total_cases\nTexas,30000\nOhio,20000\nUtah,5000\n")

	s, err := d.Head(2)
	if err != nil {
		t.Fatalf("head: %v", err)
	}
	if len(s.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(s.Rows))
	}
	if s.Rows[0][0] != "Texas" || s.Rows[1][0] != "Ohio" {
		t.Errorf("rows out of order: %v", s.Rows)
	}
	if s.Columns[1] != "total_cases" {
		t.Errorf("columns = %v", s.Columns)
	}
}

func TestRandomSample_BoundedSize(t *testing.T) {
	d := openTestCSV(t, "state,total_cases\nTexas,30000\nOhio,20000\nUtah,5000\n")

	s, err := d.RandomSample(2)
	if err != nil {
		t.Fatalf("random sample: %v", err)
	}
	if len(s.Rows) != 2 {
		t.Errorf("rows = %d, want 2", len(s.Rows))
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestClassifyColumnType(t *testing.T) {
	cases := map[string]columnKind{
		"BIGINT":       kindNumeric,
		"DOUBLE":       kindNumeric,
		"DECIMAL(8,2)": kindNumeric,
		"VARCHAR":      kindCategorical,
		"BOOLEAN":      kindCategorical,
		"TIMESTAMP":    kindDatetime,
		"DATE":         kindDatetime,
	}
	for colType, want := range cases {
		if got := classifyColumnType(colType); got != want {
			t.Errorf("classifyColumnType(%s) = %v, want %v", colType, got, want)
		}
	}
}
