package stats

import "math"

// Strength is a qualitative band for the magnitude of a correlation.
type Strength int

const (
	// StrengthInsufficient means the correlation is undefined.
	StrengthInsufficient Strength = iota
	// StrengthVeryWeak is |r| < 0.2.
	StrengthVeryWeak
	// StrengthWeak is 0.2 <= |r| < 0.4.
	StrengthWeak
	// StrengthModerate is 0.4 <= |r| < 0.6.
	StrengthModerate
	// StrengthStrong is 0.6 <= |r| < 0.8.
	StrengthStrong
	// StrengthVeryStrong is |r| >= 0.8.
	StrengthVeryStrong
)

var strengthNames = map[Strength]string{
	StrengthInsufficient: "insufficient data",
	StrengthVeryWeak:     "very weak",
	StrengthWeak:         "weak",
	StrengthModerate:     "moderate",
	StrengthStrong:       "strong",
	StrengthVeryStrong:   "very strong",
}

var strengthLabels = map[Strength]string{
	StrengthInsufficient: "Not enough variance or data to compute correlation.",
	StrengthVeryWeak:     "Very weak linear relationship.",
	StrengthWeak:         "Weak linear relationship.",
	StrengthModerate:     "Moderate linear relationship.",
	StrengthStrong:       "Strong linear relationship.",
	StrengthVeryStrong:   "Very strong linear relationship.",
}

// strengthBands lists the exclusive upper bound on |r| of each band, in
// ascending order. Anything at or above the last bound is very strong.
var strengthBands = [...]struct {
	upper    float64
	strength Strength
}{
	{0.2, StrengthVeryWeak},
	{0.4, StrengthWeak},
	{0.6, StrengthModerate},
	{0.8, StrengthStrong},
}

// String returns the short name of the band, e.g. "very weak".
func (s Strength) String() string {
	if name, exists := strengthNames[s]; exists {
		return name
	}

	return "unknown"
}

// Label returns the human-readable sentence for the band.
func (s Strength) Label() string {
	if label, exists := strengthLabels[s]; exists {
		return label
	}

	return strengthLabels[StrengthInsufficient]
}

// ClassifyCorrelation maps a correlation coefficient to its Strength band.
// An undefined (ok == false) or NaN coefficient is StrengthInsufficient.
func ClassifyCorrelation(r float64, ok bool) Strength {
	if !ok || math.IsNaN(r) {
		return StrengthInsufficient
	}

	abs := math.Abs(r)
	for _, band := range strengthBands {
		if abs < band.upper {
			return band.strength
		}
	}

	return StrengthVeryStrong
}

// CorrelationInterpretation returns a human-readable description of a
// correlation coefficient. It accepts PearsonCorrelation's results directly:
//
//	label := stats.CorrelationInterpretation(stats.PearsonCorrelation(pairs))
func CorrelationInterpretation(r float64, ok bool) string {
	return ClassifyCorrelation(r, ok).Label()
}
