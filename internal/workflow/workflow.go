// Package workflow sequences loader, analyzers, and renderer for each menu
// selection, aggregating pass/fail status across steps.
package workflow

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stocklens/stocklens/internal/analyze"
	"github.com/stocklens/stocklens/internal/config"
	"github.com/stocklens/stocklens/internal/render"
	"github.com/stocklens/stocklens/internal/table"
)

// Workflow runs the analysis pipelines against the configured input paths.
// Each run reloads its data from disk; nothing is shared across invocations.
type Workflow struct {
	cfg    *config.Config
	log    *zap.Logger
	out    io.Writer
	charts *render.Renderer
}

// New creates a workflow writing console output to out.
func New(cfg *config.Config, log *zap.Logger, out io.Writer) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workflow{
		cfg:    cfg,
		log:    log,
		out:    out,
		charts: render.NewRenderer(cfg.OutputDir),
	}
}

// status prints the one-line pass/fail outcome of an operation.
func (w *Workflow) status(op string, ok bool) {
	outcome := "SUCCESS"
	if !ok {
		outcome = "FAILED"
	}
	fmt.Fprintf(w.out, "%s: %s\n", op, outcome)
}

// Numeric loads the numeric inventory CSV, prints the statistics reports,
// and, when visualize is set, saves the numeric charts and the below-reorder
// export. Load failures are logged and reported; they do not propagate.
func (w *Workflow) Numeric(visualize bool) bool {
	run := uuid.NewString()
	w.log.Info("numeric workflow started", zap.String("run", run))

	t, err := table.LoadCSV(w.cfg.NumericCSV, analyze.NumericSchema)
	if err != nil {
		w.log.Error("numeric load failed", zap.String("run", run), zap.Error(err))
		fmt.Fprintf(w.out, "Error loading numeric data: %v\n", err)
		w.status("Numeric workflow", false)
		return false
	}
	n, err := analyze.NewNumeric(t)
	if err != nil {
		w.log.Error("numeric schema invalid", zap.String("run", run), zap.Error(err))
		w.status("Numeric workflow", false)
		return false
	}

	rep, err := basicNumericReport(n)
	if err != nil {
		w.log.Error("basic stats failed", zap.String("run", run), zap.Error(err))
		fmt.Fprintf(w.out, "Error computing statistics: %v\n", err)
		w.status("Numeric workflow", false)
		return false
	}
	rep.WriteTo(w.out)

	below := n.BelowReorder()
	rep, err = extendedNumericReport(n, below)
	if err != nil {
		w.log.Error("extended report failed", zap.String("run", run), zap.Error(err))
		fmt.Fprintf(w.out, "Error computing statistics: %v\n", err)
		w.status("Numeric workflow", false)
		return false
	}
	rep.WriteTo(w.out)
	w.printBelowReorder(below)
	w.printProbabilities(t, "Stock", "Price")

	if visualize {
		ok := w.numericCharts(t, below)
		w.status("Numeric visualizations", ok)
		if ok {
			w.log.Info("numeric visualizations saved", zap.String("run", run))
		}
	}

	w.log.Info("numeric workflow completed", zap.String("run", run))
	return true
}

func basicNumericReport(n *analyze.Numeric) (*render.Report, error) {
	total, err := n.TotalStock()
	if err != nil {
		return nil, err
	}
	avg, err := n.AveragePrice()
	if err != nil {
		return nil, err
	}
	med, err := n.MedianPrice()
	if err != nil {
		return nil, err
	}
	std, err := n.StdDevPrice()
	if err != nil {
		return nil, err
	}
	return render.NewReport("BASIC INVENTORY STATISTICS").
		Add("Total Products", n.Table().NumRows()).
		Add("Total Stock", total).
		Add("Average Price", fmt.Sprintf("$%.2f", avg)).
		Add("Median Price", fmt.Sprintf("$%.2f", med)).
		Add("Std Dev Price", fmt.Sprintf("$%.2f", std)), nil
}

func extendedNumericReport(n *analyze.Numeric, below *table.Table) (*render.Report, error) {
	total, err := n.TotalStock()
	if err != nil {
		return nil, err
	}
	avg, err := n.AveragePrice()
	if err != nil {
		return nil, err
	}
	return render.NewReport("NUMERICAL INVENTORY REPORT").
		Add("Total Stock", total).
		Add("Average Price", avg).
		Add("Items Below Reorder", below.NumRows()), nil
}

func (w *Workflow) printBelowReorder(below *table.Table) {
	if below.NumRows() == 0 {
		fmt.Fprintln(w.out, "\nNo items below reorder level.")
		return
	}
	fmt.Fprintln(w.out, "\nItems below reorder level:")
	cols, err := below.Select("ProductID", "Stock", "ReorderLevel")
	if err != nil {
		return
	}
	fmt.Fprintf(w.out, "%-10s %-8s %s\n", "ProductID", "Stock", "ReorderLevel")
	for _, row := range cols.Rows {
		fmt.Fprintf(w.out, "%-10s %-8s %s\n", row[0], row[1], row[2])
	}
}

// printProbabilities renders the joint and conditional probability tables
// over two columns of t, skipping silently when a column is absent.
func (w *Workflow) printProbabilities(t *table.Table, colA, colB string) {
	counts, err := analyze.JointCounts(t, colA, colB)
	if err != nil {
		fmt.Fprintln(w.out, "\nNot enough columns for joint counts & probabilities.")
		return
	}
	rep := render.NewReport("Joint Counts")
	for _, c := range counts {
		rep.Add(fmt.Sprintf("(%s, %s)", c.A, c.B), c.Count)
	}
	rep.WriteTo(w.out)

	probs, err := analyze.JointProbabilities(t, colA, colB)
	if err != nil {
		return
	}
	rep = render.NewReport("Joint Probabilities")
	for _, p := range probs {
		rep.Add(fmt.Sprintf("(%s, %s)", p.A, p.B), p.P)
	}
	rep.WriteTo(w.out)

	conds, err := analyze.ConditionalProbabilities(t, colA, colB)
	if err != nil {
		return
	}
	rep = render.NewReport("Conditional Probabilities")
	for _, p := range conds {
		rep.Add(fmt.Sprintf("P(%s|%s)", p.B, p.A), p.P)
	}
	rep.WriteTo(w.out)
}

// numericCharts saves every numeric chart plus the below-reorder export,
// returning false on the first failure.
func (w *Workflow) numericCharts(t *table.Table, below *table.Table) bool {
	ids, err := t.Strings("ProductID")
	if err != nil {
		w.log.Error("chart data", zap.Error(err))
		return false
	}
	idNums, err := t.Floats("ProductID")
	if err != nil {
		w.log.Error("chart data", zap.Error(err))
		return false
	}
	stock, err := t.Floats("Stock")
	if err != nil {
		w.log.Error("chart data", zap.Error(err))
		return false
	}
	price, err := t.Floats("Price")
	if err != nil {
		w.log.Error("chart data", zap.Error(err))
		return false
	}

	steps := []func() (string, error){
		func() (string, error) { return w.charts.Histogram(stock, "Stock") },
		func() (string, error) { return w.charts.Line(idNums, stock, "ProductID", "Stock") },
		func() (string, error) { return w.charts.Histogram(price, "Price") },
		func() (string, error) { return w.charts.Line(idNums, price, "ProductID", "Price") },
		func() (string, error) { return w.charts.Violin(stock, "Stock") },
		func() (string, error) { return w.charts.Box(stock, "Stock") },
		func() (string, error) { return w.charts.Scatter(idNums, price, "ProductID", "Price") },
		func() (string, error) { return w.charts.StockLevels(ids, stock) },
	}
	for _, step := range steps {
		path, err := step()
		if err != nil {
			w.log.Error("chart failed", zap.Error(err))
			return false
		}
		w.log.Info("plot saved", zap.String("path", path))
	}

	out := filepath.Join(w.cfg.OutputDir, "below_reorder.csv")
	if err := below.WriteCSV(out); err != nil {
		w.log.Error("export failed", zap.Error(err))
		return false
	}
	w.log.Info("exported below-reorder rows", zap.String("path", out))
	return true
}

// Categorical loads the descriptive inventory CSV and prints the group-count
// report, then saves the hazard bar chart, category pie chart, and, when the
// numeric table also loads, the merged price-by-hazard chart.
func (w *Workflow) Categorical() bool {
	run := uuid.NewString()
	w.log.Info("categorical workflow started", zap.String("run", run))

	t, err := table.LoadCSV(w.cfg.CategoricalCSV, analyze.CategoricalSchema)
	if err != nil {
		w.log.Error("categorical load failed", zap.String("run", run), zap.Error(err))
		fmt.Fprintf(w.out, "Error loading categorical data: %v\n", err)
		w.status("Categorical workflow", false)
		return false
	}
	c, err := analyze.NewCategorical(t)
	if err != nil {
		w.log.Error("categorical schema invalid", zap.String("run", run), zap.Error(err))
		w.status("Categorical workflow", false)
		return false
	}

	rep := render.NewReport("CATEGORICAL INVENTORY REPORT")
	for _, section := range []struct {
		title string
		count func() ([]analyze.CategoryCount, error)
	}{
		{"Items by Category", c.CountByCategory},
		{"Items by Supplier", c.CountBySupplier},
		{"Items by HazardClass", c.CountByHazardClass},
	} {
		counts, err := section.count()
		if err != nil {
			w.log.Error("group count failed", zap.String("run", run), zap.Error(err))
			continue
		}
		nested := render.NewReport(section.title)
		for _, cc := range counts {
			nested.Add(cc.Value, cc.Count)
		}
		rep.Add(section.title, nested)
	}
	rep.WriteTo(w.out)

	ok := w.categoricalCharts(c)
	w.status("Categorical visualizations", ok)
	w.log.Info("categorical workflow completed", zap.String("run", run))
	return true
}

func (w *Workflow) categoricalCharts(c *analyze.Categorical) bool {
	hazard, err := c.CountByHazardClass()
	if err != nil {
		w.log.Error("chart data", zap.Error(err))
		return false
	}
	if _, err := w.charts.HazardBar(hazard); err != nil {
		w.log.Error("chart failed", zap.Error(err))
		return false
	}
	categories, err := c.CountByCategory()
	if err != nil {
		w.log.Error("chart data", zap.Error(err))
		return false
	}
	if _, err := w.charts.CategoryPie(categories); err != nil {
		w.log.Error("chart failed", zap.Error(err))
		return false
	}

	// Merged chart needs the numeric table too; skip quietly when absent.
	numeric, err := table.LoadCSV(w.cfg.NumericCSV, analyze.NumericSchema)
	if err != nil {
		w.log.Warn("merged chart skipped", zap.Error(err))
		return true
	}
	merged, err := table.Join(numeric, c.Table(), "ProductID")
	if err != nil || merged.NumRows() == 0 {
		w.log.Warn("merged chart skipped: no joined rows")
		return true
	}
	classes, groups, err := priceGroups(merged)
	if err != nil {
		w.log.Error("chart data", zap.Error(err))
		return false
	}
	prices, err := merged.Floats("Price")
	if err != nil {
		w.log.Error("chart data", zap.Error(err))
		return false
	}
	mean := 0.0
	for _, p := range prices {
		mean += p
	}
	mean /= float64(len(prices))
	if _, err := w.charts.PriceByHazard(classes, groups, mean); err != nil {
		w.log.Error("chart failed", zap.Error(err))
		return false
	}
	return true
}

// priceGroups splits the merged table's Price column by HazardClass, classes
// sorted ascending.
func priceGroups(merged *table.Table) ([]string, [][]float64, error) {
	classCounts, err := analyze.CountBy(merged, "HazardClass")
	if err != nil {
		return nil, nil, err
	}
	prices, err := merged.Floats("Price")
	if err != nil {
		return nil, nil, err
	}
	hazards, err := merged.Strings("HazardClass")
	if err != nil {
		return nil, nil, err
	}
	classes := make([]string, len(classCounts))
	groups := make([][]float64, len(classCounts))
	for i, cc := range classCounts {
		classes[i] = cc.Value
		for j, h := range hazards {
			if h == cc.Value {
				groups[i] = append(groups[i], prices[j])
			}
		}
	}
	return classes, groups, nil
}

// RunAll runs the numeric, categorical, and vector workflows in sequence.
// Each workflow prints its own status lines. It returns true only when all
// pass.
func (w *Workflow) RunAll() bool {
	w.log.Info("run-all started")
	okNum := w.Numeric(true)
	okCat := w.Categorical()
	okVec := w.Vector()
	fmt.Fprintf(w.out, "\nOutputs saved in: %s\n", w.cfg.OutputDir)
	w.log.Info("run-all completed")
	return okNum && okCat && okVec
}

func formatVector(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.2f", x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
