package table

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, t.TempDir(), "inv.csv",
		"ProductID,Stock,Price,ReorderLevel\n101,5,10,8\n102,50,20,8\n")
	tbl, err := LoadCSV(path, []string{"ProductID", "Stock", "Price", "ReorderLevel"})
	if err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", tbl.NumRows())
	}
	stock, err := tbl.Ints("Stock")
	if err != nil {
		t.Fatalf("Ints: %v", err)
	}
	if !reflect.DeepEqual(stock, []int{5, 50}) {
		t.Fatalf("unexpected Stock column: %v", stock)
	}
	price, err := tbl.Floats("Price")
	if err != nil {
		t.Fatalf("Floats: %v", err)
	}
	if !reflect.DeepEqual(price, []float64{10, 20}) {
		t.Fatalf("unexpected Price column: %v", price)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "absent.csv"), nil)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
}

func TestLoadCSVMissingColumn(t *testing.T) {
	path := writeFile(t, t.TempDir(), "inv.csv", "ProductID,Stock\n101,5\n")
	_, err := LoadCSV(path, []string{"ProductID", "Stock", "Price"})
	var se *SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SchemaError, got %v", err)
	}
	if !reflect.DeepEqual(se.Missing, []string{"Price"}) {
		t.Fatalf("unexpected missing columns: %v", se.Missing)
	}
}

func TestLoadCSVEmptyFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.csv", "")
	_, err := LoadCSV(path, nil)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError for empty file, got %v", err)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	orig := SampleNumeric()
	path := filepath.Join(dir, "out.csv")
	if err := orig.WriteCSV(path); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	got, err := LoadCSV(path, orig.Columns)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !reflect.DeepEqual(got.Columns, orig.Columns) {
		t.Fatalf("columns changed: %v vs %v", got.Columns, orig.Columns)
	}
	if !reflect.DeepEqual(got.Rows, orig.Rows) {
		t.Fatalf("rows changed after round trip")
	}
}

func TestDatasetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inv.dataset")
	orig := SampleDataset()
	if err := orig.SaveDataset(path); err != nil {
		t.Fatalf("SaveDataset: %v", err)
	}
	got, err := LoadDataset(path)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Fatalf("dataset changed after round trip")
	}
}

func TestLoadDatasetGarbage(t *testing.T) {
	path := writeFile(t, t.TempDir(), "junk.dataset", "not a dataset")
	_, err := LoadDataset(path)
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
}

func TestNumericColumns(t *testing.T) {
	tbl := SampleDataset()
	if got := tbl.NumericColumns(); !reflect.DeepEqual(got, []string{"VectorA", "VectorB"}) {
		t.Fatalf("NumericColumns = %v", got)
	}
	if got := tbl.CategoricalColumns(); !reflect.DeepEqual(got, []string{"Category"}) {
		t.Fatalf("CategoricalColumns = %v", got)
	}
}

func TestFilterAndSelect(t *testing.T) {
	tbl := New("A", "B")
	tbl.AppendRow("1", "x")
	tbl.AppendRow("2", "y")
	tbl.AppendRow("3", "x")

	onlyX := tbl.Filter(func(row []string) bool { return row[1] == "x" })
	if onlyX.NumRows() != 2 {
		t.Fatalf("expected 2 filtered rows, got %d", onlyX.NumRows())
	}

	sel, err := tbl.Select("B")
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if !reflect.DeepEqual(sel.Columns, []string{"B"}) || sel.Rows[2][0] != "x" {
		t.Fatalf("unexpected selection: %+v", sel)
	}
	if _, err := tbl.Select("C"); err == nil {
		t.Fatal("expected error selecting unknown column")
	}
}

func TestJoin(t *testing.T) {
	num := SampleNumeric()
	cat := SampleCategorical()
	merged, err := Join(num, cat, "ProductID")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if merged.NumRows() != num.NumRows() {
		t.Fatalf("expected %d joined rows, got %d", num.NumRows(), merged.NumRows())
	}
	wantCols := len(num.Columns) + len(cat.Columns) - 1
	if len(merged.Columns) != wantCols {
		t.Fatalf("expected %d columns, got %d (%v)", wantCols, len(merged.Columns), merged.Columns)
	}
	names, err := merged.Strings("ProductName")
	if err != nil {
		t.Fatalf("Strings: %v", err)
	}
	if names[0] != "Paper Towels" {
		t.Fatalf("join misaligned: first ProductName = %q", names[0])
	}
}
