package analyze

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/stocklens/stocklens/internal/table"
)

// DistinctValues returns the distinct non-empty values of a column in
// first-seen order.
func DistinctValues(t *table.Table, col string) ([]string, error) {
	cells, err := t.Strings(col)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for _, v := range cells {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out, nil
}

// Combinations enumerates the r-length combinations of values, in
// lexicographic index order over the input slice.
func Combinations(values []string, r int) [][]string {
	if r <= 0 || r > len(values) {
		return nil
	}
	return pick(values, combin.Combinations(len(values), r))
}

// Permutations enumerates the r-length permutations of values, in
// lexicographic index order over the input slice. The generator emits
// permutations grouped by combination, so the index tuples are re-sorted.
func Permutations(values []string, r int) [][]string {
	if r <= 0 || r > len(values) {
		return nil
	}
	idx := combin.Permutations(len(values), r)
	sort.Slice(idx, func(i, j int) bool { return indexLess(idx[i], idx[j]) })
	return pick(values, idx)
}

func indexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func pick(values []string, idx [][]int) [][]string {
	out := make([][]string, len(idx))
	for i, ix := range idx {
		row := make([]string, len(ix))
		for j, k := range ix {
			row[j] = values[k]
		}
		out[i] = row
	}
	return out
}
