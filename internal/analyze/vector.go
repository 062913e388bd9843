package analyze

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrZeroVector is returned by operations that are undefined on vectors of
// zero Euclidean norm.
var ErrZeroVector = errors.New("zero vector")

// orthoTol is the floating tolerance for orthogonality and identity checks.
const orthoTol = 1e-9

func checkLengths(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}
	return nil
}

// Dot returns the inner product of two equal-length vectors.
func Dot(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}
	return floats.Dot(a, b), nil
}

// Norm returns the Euclidean norm of v.
func Norm(v []float64) float64 {
	return floats.Norm(v, 2)
}

// Unit returns v scaled to unit norm. Fails with ErrZeroVector when the norm
// is zero.
func Unit(v []float64) ([]float64, error) {
	n := Norm(v)
	if n == 0 {
		return nil, ErrZeroVector
	}
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / n
	}
	return out, nil
}

// Projection returns the projection of a onto b.
func Projection(a, b []float64) ([]float64, error) {
	if err := checkLengths(a, b); err != nil {
		return nil, err
	}
	ub, err := Unit(b)
	if err != nil {
		return nil, err
	}
	scale := floats.Dot(a, ub)
	out := make([]float64, len(ub))
	for i, x := range ub {
		out[i] = scale * x
	}
	return out, nil
}

// AngleDegrees returns the angle between a and b in [0, 180]. The cosine is
// clamped to [-1, 1] before acos to absorb rounding. Fails with ErrZeroVector
// when either vector has zero norm.
func AngleDegrees(a, b []float64) (float64, error) {
	if err := checkLengths(a, b); err != nil {
		return 0, err
	}
	na, nb := Norm(a), Norm(b)
	if na == 0 || nb == 0 {
		return 0, ErrZeroVector
	}
	cos := floats.Dot(a, b) / (na * nb)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi, nil
}

// Orthogonal reports whether the dot product of a and b is zero within
// floating tolerance.
func Orthogonal(a, b []float64) (bool, error) {
	d, err := Dot(a, b)
	if err != nil {
		return false, err
	}
	return math.Abs(d) <= orthoTol, nil
}
