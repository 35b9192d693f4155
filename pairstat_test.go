package pairstat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/pairstat/report"
	"github.com/arloliu/pairstat/sample"
	"github.com/arloliu/pairstat/stats"
)

// TestSummarize verifies the wrapper matches report.Build
func TestSummarize(t *testing.T) {
	pairs := []Pair{NewPair(1, 2), NewPair(2, 3), NewPair(3, 5), NewPair(4, 4), NewPair(5, 6), NewPair(6, 9)}

	got, err := Summarize(pairs)
	require.NoError(t, err)

	want, err := report.Build(pairs)
	require.NoError(t, err)
	require.Equal(t, want.String(), got.String())
	require.Equal(t, sample.Fingerprint(pairs), got.Fingerprint)
	require.Equal(t, stats.StrengthVeryStrong, got.Strength)
}

// TestSummarize_InvalidOption verifies option errors are passed through
func TestSummarize_InvalidOption(t *testing.T) {
	summary, err := Summarize(nil, report.WithMeanDigits(99))
	require.ErrorIs(t, err, report.ErrInvalidOption)
	require.Nil(t, summary)
}

// TestSummarize_Degenerate verifies undefined statistics are reported as nil
func TestSummarize_Degenerate(t *testing.T) {
	summary, err := Summarize([]Pair{NewPair(5, 5), NewPair(5, 5), NewPair(5, 5)})
	require.NoError(t, err)
	require.Equal(t, 3, summary.Count)
	require.Nil(t, summary.Correlation)
	require.Nil(t, summary.Significance)
	require.Nil(t, summary.Regression)
	require.Equal(t, stats.StrengthInsufficient, summary.Strength)
}

// TestChartSeries verifies rows are ordered by X
func TestChartSeries(t *testing.T) {
	series, err := ChartSeries([]Pair{NewPair(3, 1), NewPair(1, 2)}, report.WithLabelPrefix("Respondent"))
	require.NoError(t, err)
	require.Equal(t, []string{"Respondent 1", "Respondent 2"}, series.Labels)
	require.Equal(t, []float64{1, 3}, series.X)
	require.Equal(t, []float64{2, 1}, series.Y)
}
