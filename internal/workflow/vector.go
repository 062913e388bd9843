package workflow

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/stocklens/stocklens/internal/analyze"
	"github.com/stocklens/stocklens/internal/render"
	"github.com/stocklens/stocklens/internal/table"
)

// Vector loads the serialized dataset file and runs the probability, vector
// algebra, and combinatorics reports over it. Zero-vector failures from the
// algebra are caught here and reported as a failed step; the rest of the
// workflow continues.
func (w *Workflow) Vector() bool {
	run := uuid.NewString()
	w.log.Info("vector workflow started", zap.String("run", run))

	t, err := table.LoadDataset(w.cfg.DatasetFile)
	if err != nil {
		w.log.Error("dataset load failed", zap.String("run", run), zap.Error(err))
		fmt.Fprintf(w.out, "Error loading dataset: %v\n", err)
		w.status("Vector workflow", false)
		return false
	}

	numeric := t.NumericColumns()
	if len(numeric) < 2 {
		fmt.Fprintln(w.out, "Not enough numeric columns for joint analytics.")
	} else {
		colA, colB := numeric[0], numeric[1]
		w.printProbabilities(t, colA, colB)
		ok := w.vectorOps(t, colA, colB)
		w.status("Vector operations", ok)
	}

	categorical := t.CategoricalColumns()
	if len(categorical) == 0 {
		fmt.Fprintln(w.out, "No categorical column for combinations & permutations.")
	} else {
		ok := w.enumerations(t, categorical[0])
		w.status("Combinations & permutations", ok)
	}

	w.log.Info("vector workflow completed", zap.String("run", run))
	return true
}

// vectorOps prints the vector algebra report over two numeric columns.
func (w *Workflow) vectorOps(t *table.Table, colA, colB string) bool {
	v1, err := t.Floats(colA)
	if err != nil {
		w.log.Error("vector data", zap.Error(err))
		return false
	}
	v2, err := t.Floats(colB)
	if err != nil {
		w.log.Error("vector data", zap.Error(err))
		return false
	}

	rep := render.NewReport("Vector Operations")
	rep.Add("Position Vector "+colA, formatVector(v1))
	rep.Add("Position Vector "+colB, formatVector(v2))

	u1, err := analyze.Unit(v1)
	if err == nil {
		rep.Add("Unit Vector "+colA, formatVector(u1))
	}
	u2, err2 := analyze.Unit(v2)
	if err2 == nil {
		rep.Add("Unit Vector "+colB, formatVector(u2))
	}
	if errors.Is(err, analyze.ErrZeroVector) || errors.Is(err2, analyze.ErrZeroVector) {
		w.log.Error("zero vector in dataset", zap.String("colA", colA), zap.String("colB", colB))
		rep.WriteTo(w.out)
		return false
	}

	proj, err := analyze.Projection(v1, v2)
	if err != nil {
		w.log.Error("projection failed", zap.Error(err))
		return false
	}
	rep.Add(fmt.Sprintf("Projection %s onto %s", colA, colB), formatVector(proj))

	dot, err := analyze.Dot(v1, v2)
	if err != nil {
		w.log.Error("dot product failed", zap.Error(err))
		return false
	}
	rep.Add("Dot Product", dot)

	angle, err := analyze.AngleDegrees(v1, v2)
	if err != nil {
		w.log.Error("angle failed", zap.Error(err))
		return false
	}
	rep.Add("Angle (deg)", angle)

	ortho, err := analyze.Orthogonal(v1, v2)
	if err != nil {
		w.log.Error("orthogonality failed", zap.Error(err))
		return false
	}
	rep.Add("Orthogonal?", ortho)

	rep.WriteTo(w.out)
	return true
}

// enumerations prints and exports the 2-length combinations and permutations
// of a categorical column's distinct values.
func (w *Workflow) enumerations(t *table.Table, col string) bool {
	values, err := analyze.DistinctValues(t, col)
	if err != nil {
		w.log.Error("distinct values", zap.Error(err))
		return false
	}
	combos := analyze.Combinations(values, 2)
	perms := analyze.Permutations(values, 2)

	render.NewReport("Combinations").Add(col, formatPairs(combos)).WriteTo(w.out)
	render.NewReport("Permutations").Add(col, formatPairs(perms)).WriteTo(w.out)

	for _, export := range []struct {
		name  string
		pairs [][]string
	}{
		{col + "_combinations.csv", combos},
		{col + "_permutations.csv", perms},
	} {
		out := table.New(col+"1", col+"2")
		for _, p := range export.pairs {
			out.AppendRow(p...)
		}
		path := filepath.Join(w.cfg.OutputDir, export.name)
		if err := out.WriteCSV(path); err != nil {
			w.log.Error("export failed", zap.String("path", path), zap.Error(err))
			return false
		}
		w.log.Info("exported enumeration", zap.String("path", path))
	}
	return true
}

func formatPairs(pairs [][]string) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = "(" + strings.Join(p, ", ") + ")"
	}
	return strings.Join(parts, " ")
}
