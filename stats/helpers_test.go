package stats

import (
	"math"
	"math/rand"

	"github.com/arloliu/pairstat/sample"
)

// Reference samples validated against SciPy (stats.t.sf and np.corrcoef).
var (
	positiveSample = []sample.Pair{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 5}, {X: 4, Y: 4}, {X: 5, Y: 6}, {X: 6, Y: 9}}
	negativeSample = []sample.Pair{{X: 1, Y: 8}, {X: 2, Y: 5}, {X: 3, Y: 6}, {X: 4, Y: 7}, {X: 5, Y: 4}, {X: 6, Y: 2}, {X: 7, Y: 3}, {X: 8, Y: 1}}
)

// generatePairs simulates survey answers: X in [1, 100] and Y in [0, 100],
// either tracking X with noise or drawn independently.
func generatePairs(rng *rand.Rand, n int, correlated bool) []sample.Pair {
	pairs := make([]sample.Pair, n)
	for i := range pairs {
		x := rng.Intn(100) + 1
		y := rng.Intn(101)
		if correlated {
			noise := rng.Intn(29) - 14
			y = min(max(int(math.Round(float64(x)*0.8+12+float64(noise))), 0), 100)
		}
		pairs[i] = sample.Pair{X: float64(x), Y: float64(y)}
	}

	return pairs
}

func linearPairs(n int, slope, intercept float64) []sample.Pair {
	pairs := make([]sample.Pair, n)
	for i := range pairs {
		x := float64(i)*1.5 - 7
		pairs[i] = sample.Pair{X: x, Y: slope*x + intercept}
	}

	return pairs
}

func negateY(pairs []sample.Pair) []sample.Pair {
	out := make([]sample.Pair, len(pairs))
	for i, p := range pairs {
		out[i] = sample.Pair{X: p.X, Y: -p.Y}
	}

	return out
}
