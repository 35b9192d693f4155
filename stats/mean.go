package stats

import "gonum.org/v1/gonum/stat"

// Mean returns the arithmetic mean of values.
//
// Returns false for an empty slice. Non-finite inputs propagate into the
// result.
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	return stat.Mean(values, nil), true
}
