package dist

import (
	"math"

	"github.com/arloliu/pairstat/special"
)

// StudentTCDF returns P(T <= t) for Student's t distribution with df degrees
// of freedom.
//
// It returns NaN when df <= 0 or t is not finite, and exactly 0.5 at t = 0.
// Otherwise it evaluates I_x(df/2, 1/2) with x = df/(df+t²): the lower tail
// is I/2 for t < 0 and 1 − I/2 for t > 0.
func StudentTCDF(t, df float64) float64 {
	if !(df > 0) || math.IsNaN(t) || math.IsInf(t, 0) {
		return math.NaN()
	}
	if t == 0 {
		return 0.5
	}

	x := df / (df + t*t)
	ib := special.RegIncBeta(x, df/2, 0.5)
	if t > 0 {
		return 1 - 0.5*ib
	}

	return 0.5 * ib
}

// StudentTTwoTailed returns the two-tailed probability 2·(1 − CDF(|t|)) of
// observing a statistic at least as extreme as t, clamped to [0, 1].
//
// It returns NaN when StudentTCDF does.
func StudentTTwoTailed(t, df float64) float64 {
	cdf := StudentTCDF(math.Abs(t), df)
	if math.IsNaN(cdf) {
		return math.NaN()
	}

	return min(max(2*(1-cdf), 0), 1)
}
