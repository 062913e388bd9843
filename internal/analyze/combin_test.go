package analyze

import (
	"reflect"
	"testing"

	"github.com/stocklens/stocklens/internal/table"
)

func TestCombinations(t *testing.T) {
	got := Combinations([]string{"x", "y", "z"}, 2)
	want := [][]string{{"x", "y"}, {"x", "z"}, {"y", "z"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Combinations = %v, want %v", got, want)
	}
}

func TestPermutations(t *testing.T) {
	got := Permutations([]string{"x", "y"}, 2)
	want := [][]string{{"x", "y"}, {"y", "x"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Permutations = %v, want %v", got, want)
	}
}

// Three values pin the ordering: all permutations starting with x come before
// any starting with y, not grouped by the underlying combination.
func TestPermutationsLexicographicOrder(t *testing.T) {
	got := Permutations([]string{"x", "y", "z"}, 2)
	want := [][]string{
		{"x", "y"}, {"x", "z"},
		{"y", "x"}, {"y", "z"},
		{"z", "x"}, {"z", "y"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Permutations = %v, want %v", got, want)
	}
}

func TestEnumerationDegenerateR(t *testing.T) {
	if got := Combinations([]string{"x"}, 2); got != nil {
		t.Fatalf("Combinations with r > n = %v, want nil", got)
	}
	if got := Permutations([]string{"x", "y"}, 0); got != nil {
		t.Fatalf("Permutations with r = 0 = %v, want nil", got)
	}
}

func TestDistinctValuesFirstSeen(t *testing.T) {
	tbl := table.New("Category")
	for _, v := range []string{"Z", "X", "Z", "", "Y", "X"} {
		tbl.AppendRow(v)
	}
	got, err := DistinctValues(tbl, "Category")
	if err != nil {
		t.Fatalf("DistinctValues: %v", err)
	}
	want := []string{"Z", "X", "Y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DistinctValues = %v, want %v", got, want)
	}
}
