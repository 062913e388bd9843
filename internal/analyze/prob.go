package analyze

import (
	"sort"

	"github.com/stocklens/stocklens/internal/table"
)

// PairCount is the number of rows carrying a particular (A, B) value pair.
type PairCount struct {
	A, B  string
	Count int
}

// PairProb is a probability attached to a value pair. For joint tables the
// pair is (a, b); for conditional tables it is (given, target).
type PairProb struct {
	A, B string
	P    float64
}

// JointCounts counts each observed (a, b) pair over two columns. Results are
// sorted ascending by (A, B).
func JointCounts(t *table.Table, colA, colB string) ([]PairCount, error) {
	as, err := t.Strings(colA)
	if err != nil {
		return nil, err
	}
	bs, err := t.Strings(colB)
	if err != nil {
		return nil, err
	}
	type key struct{ a, b string }
	counts := make(map[key]int)
	for i := range as {
		counts[key{as[i], bs[i]}]++
	}
	out := make([]PairCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, PairCount{A: k.a, B: k.b, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out, nil
}

// JointProbabilities divides each joint count by the total row count. The
// probabilities sum to 1 across all observed pairs.
func JointProbabilities(t *table.Table, colA, colB string) ([]PairProb, error) {
	counts, err := JointCounts(t, colA, colB)
	if err != nil {
		return nil, err
	}
	total := float64(t.NumRows())
	out := make([]PairProb, len(counts))
	for i, c := range counts {
		out[i] = PairProb{A: c.A, B: c.B, P: float64(c.Count) / total}
	}
	return out, nil
}

// ConditionalProbabilities returns P(target|given) for each observed
// (given, target) pair: the joint count divided by the marginal count of the
// given value. Results are sorted ascending by (given, target).
func ConditionalProbabilities(t *table.Table, target, given string) ([]PairProb, error) {
	counts, err := JointCounts(t, given, target)
	if err != nil {
		return nil, err
	}
	marginal := make(map[string]int)
	for _, c := range counts {
		marginal[c.A] += c.Count
	}
	out := make([]PairProb, len(counts))
	for i, c := range counts {
		out[i] = PairProb{A: c.A, B: c.B, P: float64(c.Count) / float64(marginal[c.A])}
	}
	return out, nil
}
