package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/aclements/go-moremath/stats"
	chart "github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/stocklens/stocklens/internal/analyze"
)

// RenderError indicates a chart could not be built or saved.
type RenderError struct {
	Chart string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Fixed colors for the four hazard classes.
var hazardColors = map[string]color.RGBA{
	"A": {R: 0xd6, G: 0x2b, B: 0x2b, A: 0xff},
	"B": {R: 0xf0, G: 0x8c, B: 0x1e, A: 0xff},
	"C": {R: 0xe6, G: 0xc6, B: 0x19, A: 0xff},
	"D": {R: 0x2e, G: 0x8f, B: 0x3c, A: 0xff},
}

var defaultBarColor = color.RGBA{R: 0x41, G: 0x69, B: 0xb0, A: 0xff}

const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// Renderer saves chart images into a fixed output directory. File names
// follow the {column}_{charttype}.png convention; existing files are
// overwritten without warning.
type Renderer struct {
	OutDir string
}

// NewRenderer creates a renderer writing into outDir.
func NewRenderer(outDir string) *Renderer {
	return &Renderer{OutDir: outDir}
}

func (r *Renderer) path(name string) string {
	return filepath.Join(r.OutDir, name)
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	path := r.path(name)
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	return path, nil
}

// Histogram renders a 10-bin histogram of vals, saved as {col}_histogram.png.
func (r *Renderer) Histogram(vals []float64, col string) (string, error) {
	name := col + "_histogram.png"
	h, err := plotter.NewHist(plotter.Values(vals), 10)
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	p := plot.New()
	p.Title.Text = col + " Histogram"
	p.X.Label.Text = col
	p.Y.Label.Text = "Frequency"
	p.Add(h)
	return r.save(p, name)
}

// Line renders ys over xs, saved as {xcol}_{ycol}_line.png.
func (r *Renderer) Line(xs, ys []float64, xcol, ycol string) (string, error) {
	name := xcol + "_" + ycol + "_line.png"
	pts, err := xyPoints(xs, ys)
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	p := plot.New()
	p.Title.Text = ycol + " vs " + xcol
	p.X.Label.Text = xcol
	p.Y.Label.Text = ycol
	p.Add(l)
	return r.save(p, name)
}

// Scatter renders ys against xs, saved as {xcol}_{ycol}_scatter.png.
func (r *Renderer) Scatter(xs, ys []float64, xcol, ycol string) (string, error) {
	name := xcol + "_" + ycol + "_scatter.png"
	pts, err := xyPoints(xs, ys)
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	p := plot.New()
	p.Title.Text = ycol + " vs " + xcol
	p.X.Label.Text = xcol
	p.Y.Label.Text = ycol
	p.Add(s)
	return r.save(p, name)
}

// Box renders a box-and-whisker plot of vals, saved as {col}_box.png.
func (r *Renderer) Box(vals []float64, col string) (string, error) {
	name := col + "_box.png"
	b, err := plotter.NewBoxPlot(vg.Points(40), 0, plotter.Values(vals))
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	p := plot.New()
	p.Title.Text = col + " Box Plot"
	p.Y.Label.Text = col
	p.Add(b)
	p.NominalX(col)
	return r.save(p, name)
}

// Violin renders a kernel density outline of vals mirrored around a center
// axis, saved as {col}_violin.png.
func (r *Renderer) Violin(vals []float64, col string) (string, error) {
	name := col + "_violin.png"
	pts, err := violinOutline(vals)
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	poly, err := plotter.NewPolygon(pts)
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	poly.Color = color.RGBA{R: 0x41, G: 0x69, B: 0xb0, A: 0x80}
	p := plot.New()
	p.Title.Text = col + " Violin Plot"
	p.Y.Label.Text = col
	p.Add(poly)
	p.NominalX(col)
	return r.save(p, name)
}

// violinOutline evaluates a KDE over the sample and mirrors the density
// around x=0: up the right side, back down the left.
func violinOutline(vals []float64) (plotter.XYs, error) {
	if len(vals) < 2 {
		return nil, fmt.Errorf("need at least 2 values, have %d", len(vals))
	}
	dist := stats.KDE{Sample: stats.Sample{Xs: vals}}
	lo, hi := vals[0], vals[0]
	for _, v := range vals {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	pad := (hi - lo) * 0.1
	lo, hi = lo-pad, hi+pad

	const steps = 64
	ys := make([]float64, steps+1)
	ws := make([]float64, steps+1)
	maxW := 0.0
	for i := 0; i <= steps; i++ {
		y := lo + (hi-lo)*float64(i)/steps
		ys[i] = y
		ws[i] = dist.PDF(y)
		if ws[i] > maxW {
			maxW = ws[i]
		}
	}
	if maxW == 0 {
		return nil, fmt.Errorf("flat density")
	}
	pts := make(plotter.XYs, 0, 2*(steps+1))
	for i := 0; i <= steps; i++ {
		pts = append(pts, plotter.XY{X: 0.4 * ws[i] / maxW, Y: ys[i]})
	}
	for i := steps; i >= 0; i-- {
		pts = append(pts, plotter.XY{X: -0.4 * ws[i] / maxW, Y: ys[i]})
	}
	return pts, nil
}

// StockLevels renders a bar chart of stock per product, saved as
// stock_levels.png. Bars appear in the order given.
func (r *Renderer) StockLevels(ids []string, stocks []float64) (string, error) {
	const name = "stock_levels.png"
	if len(ids) != len(stocks) {
		return "", &RenderError{Chart: name, Err: fmt.Errorf("length mismatch: %d ids, %d stocks", len(ids), len(stocks))}
	}
	bars, err := plotter.NewBarChart(plotter.Values(stocks), vg.Points(16))
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	bars.Color = defaultBarColor
	p := plot.New()
	p.Title.Text = "Inventory Stock Levels"
	p.X.Label.Text = "ProductID"
	p.Y.Label.Text = "Stock"
	p.Add(bars)
	p.NominalX(ids...)
	return r.save(p, name)
}

// HazardBar renders one colored bar per hazard class, saved as
// hazard_distribution.png.
func (r *Renderer) HazardBar(counts []analyze.CategoryCount) (string, error) {
	const name = "hazard_distribution.png"
	p := plot.New()
	p.Title.Text = "Distribution by Hazard Class"
	p.X.Label.Text = "HazardClass"
	p.Y.Label.Text = "Count"
	labels := make([]string, len(counts))
	for i, c := range counts {
		vals := make(plotter.Values, len(counts))
		vals[i] = float64(c.Count)
		bars, err := plotter.NewBarChart(vals, vg.Points(24))
		if err != nil {
			return "", &RenderError{Chart: name, Err: err}
		}
		bars.LineStyle.Width = 0
		if col, ok := hazardColors[c.Value]; ok {
			bars.Color = col
		} else {
			bars.Color = defaultBarColor
		}
		p.Add(bars)
		labels[i] = c.Value
	}
	p.NominalX(labels...)
	return r.save(p, name)
}

// CategoryPie renders a pie chart of counts, saved as
// category_distribution.png.
func (r *Renderer) CategoryPie(counts []analyze.CategoryCount) (string, error) {
	const name = "category_distribution.png"
	if len(counts) == 0 {
		return "", &RenderError{Chart: name, Err: fmt.Errorf("no categories")}
	}
	values := make([]chart.Value, len(counts))
	for i, c := range counts {
		values[i] = chart.Value{Value: float64(c.Count), Label: c.Value}
	}
	pie := chart.PieChart{
		Title:  "Distribution by Category",
		Width:  600,
		Height: 600,
		Values: values,
	}
	path := r.path(name)
	f, err := os.Create(path)
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	defer f.Close()
	if err := pie.Render(chart.PNG, f); err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	return path, nil
}

// PriceByHazard renders one box plot per hazard class with a dashed rule at
// the overall mean price, saved as price_by_hazard.png. classes and groups
// are parallel slices.
func (r *Renderer) PriceByHazard(classes []string, groups [][]float64, mean float64) (string, error) {
	const name = "price_by_hazard.png"
	if len(classes) != len(groups) {
		return "", &RenderError{Chart: name, Err: fmt.Errorf("length mismatch: %d classes, %d groups", len(classes), len(groups))}
	}
	p := plot.New()
	p.Title.Text = "Price Distribution by Hazard Class"
	p.X.Label.Text = "HazardClass"
	p.Y.Label.Text = "Price"
	for i, g := range groups {
		b, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(g))
		if err != nil {
			return "", &RenderError{Chart: name, Err: err}
		}
		p.Add(b)
	}
	rule, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: mean},
		{X: float64(len(groups)) - 0.5, Y: mean},
	})
	if err != nil {
		return "", &RenderError{Chart: name, Err: err}
	}
	rule.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(rule)
	p.NominalX(classes...)
	return r.save(p, name)
}

func xyPoints(xs, ys []float64) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("length mismatch: %d xs, %d ys", len(xs), len(ys))
	}
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts, nil
}
