package analyze

import (
	"sort"

	"github.com/stocklens/stocklens/internal/table"
)

// CategoricalSchema lists the columns a descriptive inventory table must carry.
var CategoricalSchema = []string{"ProductID", "ProductName", "Category", "HazardClass", "Supplier"}

// CategoryCount is one group's size in a group-by count.
type CategoryCount struct {
	Value string
	Count int
}

// Categorical computes group-by counts over a descriptive inventory table.
type Categorical struct {
	tbl *table.Table
}

// NewCategorical validates the required schema and wraps the table.
func NewCategorical(t *table.Table) (*Categorical, error) {
	if err := t.Validate(CategoricalSchema); err != nil {
		return nil, err
	}
	return &Categorical{tbl: t}, nil
}

// Table returns the underlying table.
func (c *Categorical) Table() *table.Table { return c.tbl }

// CountBy groups the rows by the given column and counts each group.
// Results are sorted ascending by group value.
func CountBy(t *table.Table, col string) ([]CategoryCount, error) {
	cells, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, v := range cells {
		counts[v]++
	}
	out := make([]CategoryCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, CategoryCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out, nil
}

// CountByCategory counts items per Category.
func (c *Categorical) CountByCategory() ([]CategoryCount, error) {
	return CountBy(c.tbl, "Category")
}

// CountBySupplier counts items per Supplier.
func (c *Categorical) CountBySupplier() ([]CategoryCount, error) {
	return CountBy(c.tbl, "Supplier")
}

// CountByHazardClass counts items per HazardClass (A, B, C, or D).
func (c *Categorical) CountByHazardClass() ([]CategoryCount, error) {
	return CountBy(c.tbl, "HazardClass")
}
