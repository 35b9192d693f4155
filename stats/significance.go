package stats

import (
	"math"

	"github.com/arloliu/pairstat/dist"
	"github.com/arloliu/pairstat/sample"
)

// PerfectCorrelationTolerance is the distance from ±1 within which a
// correlation coefficient is treated as perfect by
// PearsonCorrelationSignificance. Centering sums can leave r a few ULPs short
// of ±1 for exactly collinear data.
const PerfectCorrelationTolerance = 1e-12

// Significance is the result of testing a Pearson correlation against the
// null hypothesis of no linear association.
type Significance struct {
	// TStatistic is r·√(df / (1 − r²)); ±Inf for perfect correlation.
	TStatistic float64
	// PValue is the two-tailed p-value in [0, 1].
	PValue float64
	// DegreesOfFreedom is the number of pairs minus 2.
	DegreesOfFreedom int
}

// PearsonCorrelationSignificance tests whether the Pearson correlation of
// pairs differs from zero.
//
// The statistic t = r·√(df / (1 − r²)) with df = n − 2 follows Student's t
// distribution under the null hypothesis. The p-value is
// 2·(1 − CDF(|t|, df)) clamped to [0, 1].
//
// When |r| is within PerfectCorrelationTolerance of 1 the general formula
// would divide by zero; the result is then t = ±Inf (sign of r) with a p-value
// of exactly 0.
//
// Parameters:
//   - pairs: Sample pairs; at least 3 are required
//
// Returns:
//   - Significance: t-statistic, p-value and degrees of freedom
//   - bool: false with fewer than 3 pairs, when the correlation is undefined,
//     or when the distribution function is not finite
func PearsonCorrelationSignificance(pairs []sample.Pair) (Significance, bool) {
	n := len(pairs)
	if n < 3 {
		return Significance{}, false
	}

	r, ok := PearsonCorrelation(pairs)
	if !ok {
		return Significance{}, false
	}

	df := n - 2
	if math.Abs(r) >= 1-PerfectCorrelationTolerance {
		return Significance{
			TStatistic:       math.Copysign(math.Inf(1), r),
			PValue:           0,
			DegreesOfFreedom: df,
		}, true
	}

	t := r * math.Sqrt(float64(df)/(1-r*r))
	p := dist.StudentTTwoTailed(t, float64(df))
	if math.IsNaN(p) {
		return Significance{}, false
	}

	return Significance{TStatistic: t, PValue: p, DegreesOfFreedom: df}, true
}

// IsSignificant reports whether the p-value is strictly below alpha.
func (s Significance) IsSignificant(alpha float64) bool {
	return s.PValue < alpha
}
