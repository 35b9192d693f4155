package stats

import (
	"math"

	"github.com/arloliu/pairstat/sample"
)

// centeredSums holds the column means and the centered cross and square sums
// shared by correlation and regression.
type centeredSums struct {
	meanX float64
	meanY float64
	sxy   float64 // Σ dx·dy
	sxx   float64 // Σ dx²
	syy   float64 // Σ dy²
}

// computeCenteredSums makes two passes over pairs: one for the column means
// and one for the sums of centered products. Callers check len(pairs) first.
func computeCenteredSums(pairs []sample.Pair) (centeredSums, bool) {
	xs, ys := sample.Columns(pairs)
	meanX, okX := Mean(xs)
	meanY, okY := Mean(ys)
	if !okX || !okY {
		return centeredSums{}, false
	}

	s := centeredSums{meanX: meanX, meanY: meanY}
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		s.sxy += dx * dy
		s.sxx += dx * dx
		s.syy += dy * dy
	}

	return s, true
}

// PearsonCorrelation returns the Pearson correlation coefficient r of pairs.
//
// The coefficient is Σdx·dy / √(Σdx²·Σdy²) over values centered on their
// column means.
//
// Parameters:
//   - pairs: Sample pairs; order does not affect the result
//
// Returns:
//   - float64: r in [-1, 1]; rounding overshoot past ±1 is clamped
//   - bool: false with fewer than 2 pairs, when either column has zero
//     variance, or when non-finite inputs make r non-finite
func PearsonCorrelation(pairs []sample.Pair) (float64, bool) {
	if len(pairs) < 2 {
		return 0, false
	}

	s, ok := computeCenteredSums(pairs)
	if !ok {
		return 0, false
	}

	denominator := math.Sqrt(s.sxx * s.syy)
	if denominator == 0 {
		return 0, false
	}

	r := s.sxy / denominator
	if !isFinite(r) {
		return 0, false
	}

	return min(max(r, -1), 1), true
}
