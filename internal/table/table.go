// Package table holds tabular data in memory for the duration of one run.
//
// A Table keeps cells as strings in row-major order; typed accessors parse a
// column on demand. Tables are created at load time and treated as read-only
// during analysis.
package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Table is an ordered set of named columns over row-major string cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New creates an empty table with the given column names.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int { return len(t.Rows) }

// ColumnIndex returns the position of name, or -1 when absent. Column name
// matching trims surrounding whitespace, the way headers are loaded.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Validate checks that every required column is present.
func (t *Table) Validate(required []string) error {
	var missing []string
	for _, r := range required {
		if !t.HasColumn(r) {
			missing = append(missing, r)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// AppendRow adds a row; short rows are padded with empty cells.
func (t *Table) AppendRow(cells ...string) {
	if len(cells) < len(t.Columns) {
		padded := make([]string, len(t.Columns))
		copy(padded, cells)
		cells = padded
	}
	t.Rows = append(t.Rows, cells)
}

// Strings returns the raw cells of a column.
func (t *Table) Strings(col string) ([]string, error) {
	i := t.ColumnIndex(col)
	if i < 0 {
		return nil, &SchemaError{Missing: []string{col}}
	}
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out, nil
}

// Floats parses a column as float64.
func (t *Table) Floats(col string) ([]float64, error) {
	cells, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for r, v := range cells {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", col, r+1, err)
		}
		out[r] = f
	}
	return out, nil
}

// Ints parses a column as int.
func (t *Table) Ints(col string) ([]int, error) {
	cells, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(cells))
	for r, v := range cells {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("column %s row %d: %w", col, r+1, err)
		}
		out[r] = n
	}
	return out, nil
}

// Filter returns a new table containing the rows for which keep returns true.
// The row slices are shared with the receiver; tables are read-only after load.
func (t *Table) Filter(keep func(row []string) bool) *Table {
	out := &Table{Columns: t.Columns}
	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Select returns a new table restricted to the named columns.
func (t *Table) Select(cols ...string) (*Table, error) {
	idx := make([]int, len(cols))
	for i, c := range cols {
		j := t.ColumnIndex(c)
		if j < 0 {
			return nil, &SchemaError{Missing: []string{c}}
		}
		idx[i] = j
	}
	out := &Table{Columns: append([]string(nil), cols...)}
	for _, row := range t.Rows {
		cells := make([]string, len(idx))
		for i, j := range idx {
			cells[i] = row[j]
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// NumericColumns returns the columns whose non-empty cells all parse as
// numbers, in table order. Columns with no non-empty cells do not qualify.
func (t *Table) NumericColumns() []string {
	var out []string
	for i, c := range t.Columns {
		seen := 0
		numeric := true
		for _, row := range t.Rows {
			v := strings.TrimSpace(row[i])
			if v == "" {
				continue
			}
			seen++
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				numeric = false
				break
			}
		}
		if numeric && seen > 0 {
			out = append(out, c)
		}
	}
	return out
}

// CategoricalColumns returns the columns that are not numeric, in table order.
func (t *Table) CategoricalColumns() []string {
	numeric := make(map[string]bool)
	for _, c := range t.NumericColumns() {
		numeric[c] = true
	}
	var out []string
	for _, c := range t.Columns {
		if !numeric[c] {
			out = append(out, c)
		}
	}
	return out
}

// Join inner-joins a and b on the named key column. Columns of a come first;
// b contributes its remaining columns. Rows of b are matched by the first
// occurrence of each key.
func Join(a, b *Table, key string) (*Table, error) {
	ka := a.ColumnIndex(key)
	if ka < 0 {
		return nil, &SchemaError{Missing: []string{key}}
	}
	kb := b.ColumnIndex(key)
	if kb < 0 {
		return nil, &SchemaError{Missing: []string{key}}
	}
	byKey := make(map[string][]string, len(b.Rows))
	for _, row := range b.Rows {
		if _, ok := byKey[row[kb]]; !ok {
			byKey[row[kb]] = row
		}
	}
	out := &Table{Columns: append([]string(nil), a.Columns...)}
	for j, c := range b.Columns {
		if j != kb {
			out.Columns = append(out.Columns, c)
		}
	}
	for _, row := range a.Rows {
		match, ok := byKey[row[ka]]
		if !ok {
			continue
		}
		cells := append([]string(nil), row...)
		for j, v := range match {
			if j != kb {
				cells = append(cells, v)
			}
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}
