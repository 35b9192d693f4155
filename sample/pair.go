package sample

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
)

// Pair is one observation unit: two real-valued measurements of the same
// subject.
type Pair struct {
	X float64
	Y float64
}

// NewPair returns the pair (x, y).
func NewPair(x, y float64) Pair {
	return Pair{X: x, Y: y}
}

// String returns the pair formatted as "(x, y)".
func (p Pair) String() string {
	return "(" + strconv.FormatFloat(p.X, 'g', -1, 64) + ", " + strconv.FormatFloat(p.Y, 'g', -1, 64) + ")"
}

// Columns splits pairs into their X and Y columns.
//
// Both returned slices have len(pairs) elements and are freshly allocated.
func Columns(pairs []Pair) (xs, ys []float64) {
	xs = make([]float64, len(pairs))
	ys = make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return xs, ys
}

// FromInts zips two integer columns into pairs.
//
// Returns an error if the columns differ in length.
func FromInts(xs, ys []int) ([]Pair, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("mismatched column lengths: %d x vs %d y", len(xs), len(ys))
	}

	pairs := make([]Pair, len(xs))
	for i := range xs {
		pairs[i] = Pair{X: float64(xs[i]), Y: float64(ys[i])}
	}

	return pairs, nil
}

// FromFunc maps records to pairs using fn, preserving order.
func FromFunc[T any](records []T, fn func(T) (x, y float64)) []Pair {
	pairs := make([]Pair, len(records))
	for i, r := range records {
		x, y := fn(r)
		pairs[i] = Pair{X: x, Y: y}
	}

	return pairs
}

// SortedByX returns a copy of pairs ordered by ascending X.
// Pairs with equal X keep their input order.
func SortedByX(pairs []Pair) []Pair {
	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, func(a, b Pair) int {
		return cmp.Compare(a.X, b.X)
	})

	return sorted
}
