package render

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stocklens/stocklens/internal/analyze"
)

var sampleVals = []float64{5, 42, 18, 0.5, 67, 33, 12, 55, 21, 80}

func checkSaved(t *testing.T, path string, err error, want string) {
	t.Helper()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if filepath.Base(path) != want {
		t.Fatalf("saved as %s, want %s", filepath.Base(path), want)
	}
	info, statErr := os.Stat(path)
	if statErr != nil {
		t.Fatalf("stat %s: %v", path, statErr)
	}
	if info.Size() == 0 {
		t.Fatalf("%s is empty", path)
	}
}

func TestHistogramNaming(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.Histogram(sampleVals, "Stock")
	checkSaved(t, path, err, "Stock_histogram.png")
}

func TestLineAndScatterNaming(t *testing.T) {
	r := NewRenderer(t.TempDir())
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	path, err := r.Line(xs, sampleVals, "ProductID", "Stock")
	checkSaved(t, path, err, "ProductID_Stock_line.png")

	path, err = r.Scatter(xs, sampleVals, "ProductID", "Price")
	checkSaved(t, path, err, "ProductID_Price_scatter.png")
}

func TestBoxAndViolin(t *testing.T) {
	r := NewRenderer(t.TempDir())

	path, err := r.Box(sampleVals, "Stock")
	checkSaved(t, path, err, "Stock_box.png")

	path, err = r.Violin(sampleVals, "Stock")
	checkSaved(t, path, err, "Stock_violin.png")
}

func TestViolinNeedsData(t *testing.T) {
	r := NewRenderer(t.TempDir())
	_, err := r.Violin([]float64{1}, "Stock")
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RenderError, got %v", err)
	}
}

func TestStockLevels(t *testing.T) {
	r := NewRenderer(t.TempDir())
	path, err := r.StockLevels([]string{"101", "102", "103"}, []float64{5, 42, 18})
	checkSaved(t, path, err, "stock_levels.png")

	if _, err := r.StockLevels([]string{"101"}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestHazardBarAndCategoryPie(t *testing.T) {
	r := NewRenderer(t.TempDir())
	counts := []analyze.CategoryCount{
		{Value: "A", Count: 2},
		{Value: "B", Count: 1},
		{Value: "C", Count: 3},
		{Value: "D", Count: 1},
	}

	path, err := r.HazardBar(counts)
	checkSaved(t, path, err, "hazard_distribution.png")

	path, err = r.CategoryPie(counts)
	checkSaved(t, path, err, "category_distribution.png")
}

func TestCategoryPieEmpty(t *testing.T) {
	r := NewRenderer(t.TempDir())
	_, err := r.CategoryPie(nil)
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RenderError, got %v", err)
	}
}

func TestPriceByHazard(t *testing.T) {
	r := NewRenderer(t.TempDir())
	classes := []string{"A", "B"}
	groups := [][]float64{{10, 12, 14}, {20, 22}}
	path, err := r.PriceByHazard(classes, groups, 15.6)
	checkSaved(t, path, err, "price_by_hazard.png")
}

func TestOverwriteExisting(t *testing.T) {
	dir := t.TempDir()
	r := NewRenderer(dir)
	stale := filepath.Join(dir, "Stock_histogram.png")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatalf("write stale file: %v", err)
	}
	path, err := r.Histogram(sampleVals, "Stock")
	checkSaved(t, path, err, "Stock_histogram.png")
	info, err := os.Stat(stale)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == int64(len("stale")) {
		t.Fatal("existing file was not overwritten")
	}
}

func TestRenderErrorOnBadDir(t *testing.T) {
	r := NewRenderer(filepath.Join(t.TempDir(), "missing", "nested"))
	_, err := r.Histogram(sampleVals, "Stock")
	var re *RenderError
	if !errors.As(err, &re) {
		t.Fatalf("expected *RenderError, got %v", err)
	}
}
