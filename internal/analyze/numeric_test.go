package analyze

import (
	"errors"
	"math"
	"testing"

	"github.com/stocklens/stocklens/internal/table"
)

func numericTable(t *testing.T, rows [][]string) *Numeric {
	t.Helper()
	tbl := table.New("ProductID", "Stock", "Price", "ReorderLevel")
	for _, r := range rows {
		tbl.AppendRow(r...)
	}
	n, err := NewNumeric(tbl)
	if err != nil {
		t.Fatalf("NewNumeric: %v", err)
	}
	return n
}

func TestNewNumericSchema(t *testing.T) {
	tbl := table.New("ProductID", "Stock")
	_, err := NewNumeric(tbl)
	var se *table.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected *table.SchemaError, got %v", err)
	}
}

func TestBelowReorderScenario(t *testing.T) {
	// ProductID [101,102], Stock [5,50], Price [10,20], ReorderLevel [8,8]
	n := numericTable(t, [][]string{
		{"101", "5", "10", "8"},
		{"102", "50", "20", "8"},
	})

	below := n.BelowReorder()
	if below.NumRows() != 1 {
		t.Fatalf("expected 1 row below reorder, got %d", below.NumRows())
	}
	ids, err := below.Strings("ProductID")
	if err != nil {
		t.Fatalf("Strings: %v", err)
	}
	if ids[0] != "101" {
		t.Fatalf("expected ProductID 101, got %s", ids[0])
	}

	avg, err := n.AveragePrice()
	if err != nil {
		t.Fatalf("AveragePrice: %v", err)
	}
	if avg != 15.0 {
		t.Fatalf("AveragePrice = %v, want 15.0", avg)
	}
}

func TestBelowReorderNone(t *testing.T) {
	n := numericTable(t, [][]string{
		{"101", "50", "10", "8"},
		{"102", "60", "20", "8"},
	})
	if got := n.BelowReorder().NumRows(); got != 0 {
		t.Fatalf("expected 0 rows below reorder, got %d", got)
	}
}

func TestTotalStockOrderInsensitive(t *testing.T) {
	a := numericTable(t, [][]string{
		{"101", "5", "10", "8"},
		{"102", "50", "20", "8"},
		{"103", "7", "30", "8"},
	})
	b := numericTable(t, [][]string{
		{"103", "7", "30", "8"},
		{"101", "5", "10", "8"},
		{"102", "50", "20", "8"},
	})
	ta, err := a.TotalStock()
	if err != nil {
		t.Fatalf("TotalStock: %v", err)
	}
	tb, err := b.TotalStock()
	if err != nil {
		t.Fatalf("TotalStock: %v", err)
	}
	if ta != 62 || tb != 62 {
		t.Fatalf("TotalStock = %d / %d, want 62", ta, tb)
	}
}

func TestMedianAndStdDev(t *testing.T) {
	n := numericTable(t, [][]string{
		{"101", "1", "10", "5"},
		{"102", "2", "20", "5"},
		{"103", "3", "40", "5"},
	})
	med, err := n.MedianPrice()
	if err != nil {
		t.Fatalf("MedianPrice: %v", err)
	}
	if med != 20 {
		t.Fatalf("MedianPrice = %v, want 20", med)
	}
	std, err := n.StdDevPrice()
	if err != nil {
		t.Fatalf("StdDevPrice: %v", err)
	}
	// sample std dev of {10,20,40}
	want := math.Sqrt(700.0 / 3.0)
	if math.Abs(std-want) > 1e-9 {
		t.Fatalf("StdDevPrice = %v, want %v", std, want)
	}
}

func TestEmptyColumnsAreNaN(t *testing.T) {
	n := numericTable(t, nil)
	avg, err := n.AveragePrice()
	if err != nil {
		t.Fatalf("AveragePrice: %v", err)
	}
	if !math.IsNaN(avg) {
		t.Fatalf("AveragePrice on empty table = %v, want NaN", avg)
	}
	total, err := n.TotalStock()
	if err != nil {
		t.Fatalf("TotalStock: %v", err)
	}
	if total != 0 {
		t.Fatalf("TotalStock on empty table = %d, want 0", total)
	}
}
