// Package analyze computes descriptive statistics, group counts, vector
// algebra, and probability tables over in-memory tables.
package analyze

import (
	"strconv"

	"github.com/aclements/go-moremath/stats"

	"github.com/stocklens/stocklens/internal/table"
)

// NumericSchema lists the columns a numeric inventory table must carry.
var NumericSchema = []string{"ProductID", "Stock", "Price", "ReorderLevel"}

// Numeric computes reductions over a numeric inventory table.
type Numeric struct {
	tbl *table.Table
}

// NewNumeric validates the required schema and wraps the table.
func NewNumeric(t *table.Table) (*Numeric, error) {
	if err := t.Validate(NumericSchema); err != nil {
		return nil, err
	}
	return &Numeric{tbl: t}, nil
}

// Table returns the underlying table.
func (n *Numeric) Table() *table.Table { return n.tbl }

// TotalStock returns the sum of the Stock column.
func (n *Numeric) TotalStock() (int, error) {
	xs, err := n.tbl.Ints("Stock")
	if err != nil {
		return 0, err
	}
	total := 0
	for _, x := range xs {
		total += x
	}
	return total, nil
}

// AveragePrice returns the mean of the Price column, NaN when empty.
func (n *Numeric) AveragePrice() (float64, error) {
	return n.priceStat(func(s stats.Sample) float64 { return s.Mean() })
}

// MedianPrice returns the median of the Price column, NaN when empty.
func (n *Numeric) MedianPrice() (float64, error) {
	return n.priceStat(func(s stats.Sample) float64 { return s.Quantile(0.5) })
}

// StdDevPrice returns the sample standard deviation of the Price column,
// NaN when fewer than two rows are present.
func (n *Numeric) StdDevPrice() (float64, error) {
	return n.priceStat(func(s stats.Sample) float64 { return s.StdDev() })
}

func (n *Numeric) priceStat(f func(stats.Sample) float64) (float64, error) {
	xs, err := n.tbl.Floats("Price")
	if err != nil {
		return 0, err
	}
	return f(stats.Sample{Xs: xs}), nil
}

// BelowReorder returns the rows where Stock < ReorderLevel. The result is
// empty, never nil, when no such rows exist.
func (n *Numeric) BelowReorder() *table.Table {
	si := n.tbl.ColumnIndex("Stock")
	ri := n.tbl.ColumnIndex("ReorderLevel")
	return n.tbl.Filter(func(row []string) bool {
		stock, err1 := strconv.Atoi(row[si])
		level, err2 := strconv.Atoi(row[ri])
		return err1 == nil && err2 == nil && stock < level
	})
}
