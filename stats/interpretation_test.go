package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyCorrelation_Boundaries(t *testing.T) {
	tests := []struct {
		r    float64
		want Strength
	}{
		{0, StrengthVeryWeak},
		{0.1999999, StrengthVeryWeak},
		{0.2, StrengthWeak},
		{0.3999999, StrengthWeak},
		{0.4, StrengthModerate},
		{0.5999999, StrengthModerate},
		{0.6, StrengthStrong},
		{0.7999999, StrengthStrong},
		{0.8, StrengthVeryStrong},
		{1, StrengthVeryStrong},
		{-0.1999999, StrengthVeryWeak},
		{-0.2, StrengthWeak},
		{-0.8, StrengthVeryStrong},
		{-1, StrengthVeryStrong},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("r=%g", tt.r), func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCorrelation(tt.r, true))
		})
	}
}

func TestClassifyCorrelation_Undefined(t *testing.T) {
	assert.Equal(t, StrengthInsufficient, ClassifyCorrelation(0.9, false))
	assert.Equal(t, StrengthInsufficient, ClassifyCorrelation(math.NaN(), true))
}

func TestStrength_String(t *testing.T) {
	tests := []struct {
		s    Strength
		want string
	}{
		{StrengthInsufficient, "insufficient data"},
		{StrengthVeryWeak, "very weak"},
		{StrengthWeak, "weak"},
		{StrengthModerate, "moderate"},
		{StrengthStrong, "strong"},
		{StrengthVeryStrong, "very strong"},
		{Strength(42), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestCorrelationInterpretation(t *testing.T) {
	tests := []struct {
		name string
		r    float64
		ok   bool
		want string
	}{
		{"very weak", 0.1999999, true, "Very weak linear relationship."},
		{"weak", 0.2, true, "Weak linear relationship."},
		{"moderate", -0.45, true, "Moderate linear relationship."},
		{"strong", 0.7999999, true, "Strong linear relationship."},
		{"very strong", 0.8, true, "Very strong linear relationship."},
		{"undefined", 0, false, "Not enough variance or data to compute correlation."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CorrelationInterpretation(tt.r, tt.ok))
		})
	}

	// Feeds straight from PearsonCorrelation.
	assert.Equal(t, "Very strong linear relationship.", CorrelationInterpretation(PearsonCorrelation(positiveSample)))
	assert.Equal(t, "Not enough variance or data to compute correlation.", CorrelationInterpretation(PearsonCorrelation(nil)))
	assert.Equal(t, StrengthInsufficient.Label(), Strength(-3).Label())
}
