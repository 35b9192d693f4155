package stats

import (
	"fmt"
	"math"

	"github.com/arloliu/pairstat/sample"
)

// Regression is a fitted line y = Slope·x + Intercept.
type Regression struct {
	// Slope is the change in y per unit of x.
	Slope float64
	// Intercept is the value of y at x = 0.
	Intercept float64
}

// Predict evaluates the fitted line at x.
func (r Regression) Predict(x float64) float64 {
	return r.Slope*x + r.Intercept
}

// String returns the line formatted as "y = <slope>x ± <intercept>".
func (r Regression) String() string {
	sign := '+'
	intercept := r.Intercept
	if intercept < 0 {
		sign = '-'
		intercept = -intercept
	}

	return fmt.Sprintf("y = %.4fx %c %.4f", r.Slope, sign, intercept)
}

// SimpleRegression fits y = slope·x + intercept to pairs by ordinary least
// squares.
//
// The slope is Σdx·dy / Σdx² and the intercept meanY − slope·meanX, using the
// same centered sums as PearsonCorrelation.
//
// Parameters:
//   - pairs: Sample pairs with X as the independent variable
//
// Returns:
//   - Regression: The fitted line
//   - bool: false with fewer than 2 pairs, when X has zero variance (the line
//     would be vertical), or when the coefficients are not finite
func SimpleRegression(pairs []sample.Pair) (Regression, bool) {
	if len(pairs) < 2 {
		return Regression{}, false
	}

	s, ok := computeCenteredSums(pairs)
	if !ok || s.sxx == 0 {
		return Regression{}, false
	}

	slope := s.sxy / s.sxx
	intercept := s.meanY - slope*s.meanX
	if !isFinite(slope) || !isFinite(intercept) {
		return Regression{}, false
	}

	return Regression{Slope: slope, Intercept: intercept}, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
