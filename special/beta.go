package special

import "math"

const (
	// MaxIterations bounds the number of continued-fraction terms evaluated
	// by RegIncBeta.
	MaxIterations = 200
	// Epsilon is the relative change between successive convergents below
	// which the continued fraction is considered converged.
	Epsilon = 3e-7
	// FloorMin replaces any intermediate Lentz denominator whose magnitude
	// drops below it.
	FloorMin = 1e-30
)

// RegIncBeta returns the regularized incomplete beta function I_x(a, b) for
// shape parameters a, b > 0.
//
// It returns 0 for x <= 0 and 1 for x >= 1. Inside (0, 1) the continued
// fraction is evaluated directly when x < (a+1)/(a+b+2) and through the
// symmetry I_x(a, b) = 1 − I_{1−x}(b, a) otherwise, whichever converges
// faster.
func RegIncBeta(x, a, b float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}

	lnFront := LnGamma(a+b) - LnGamma(a) - LnGamma(b) + a*math.Log(x) + b*math.Log(1-x)
	front := math.Exp(lnFront)

	if x < (a+1)/(a+b+2) {
		return front * betaContinuedFraction(x, a, b) / a
	}

	return 1 - front*betaContinuedFraction(1-x, b, a)/b
}

// betaContinuedFraction evaluates the continued fraction of the incomplete
// beta function using the modified Lentz algorithm.
//
// Each iteration applies one even and one odd step. Near-zero denominators
// are snapped to FloorMin; removing that guard lets small shape parameters
// divide by zero.
func betaContinuedFraction(x, a, b float64) float64 {
	qab := a + b
	qap := a + 1
	qam := a - 1

	c := 1.0
	d := 1 - qab*x/qap
	if math.Abs(d) < FloorMin {
		d = FloorMin
	}
	d = 1 / d
	h := d

	for m := 1; m <= MaxIterations; m++ {
		fm := float64(m)
		m2 := 2 * fm

		// even step
		aa := fm * (b - fm) * x / ((qam + m2) * (a + m2))
		d = 1 + aa*d
		if math.Abs(d) < FloorMin {
			d = FloorMin
		}
		c = 1 + aa/c
		if math.Abs(c) < FloorMin {
			c = FloorMin
		}
		d = 1 / d
		h *= d * c

		// odd step
		aa = -(a + fm) * (qab + fm) * x / ((a + m2) * (qap + m2))
		d = 1 + aa*d
		if math.Abs(d) < FloorMin {
			d = FloorMin
		}
		c = 1 + aa/c
		if math.Abs(c) < FloorMin {
			c = FloorMin
		}
		d = 1 / d
		delta := d * c
		h *= delta

		if math.Abs(delta-1) < Epsilon {
			break
		}
	}

	return h
}
