// Package pairstat provides statistical inference over paired numeric samples.
//
// Given a collection of (x, y) pairs, such as two survey answers given by the
// same respondent, pairstat computes column means, the Pearson correlation
// coefficient, an ordinary least-squares regression line and the two-tailed
// significance of the observed correlation. The special functions behind the
// t-test (log-gamma, regularized incomplete beta and the Student's t CDF) are
// implemented in-module with fixed, documented tolerances.
//
// # Core Features
//
//   - Pearson correlation with comma-ok handling of degenerate samples
//   - Simple linear regression (y = slope·x + intercept)
//   - t-statistic and two-tailed p-value for r against zero
//   - Qualitative strength bands and human-readable interpretation
//   - Formatted summaries and chart series for presentation layers
//
// # Basic Usage
//
// Summarizing a sample in one call:
//
//	import "github.com/arloliu/pairstat"
//
//	pairs := []pairstat.Pair{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 5}}
//	summary, err := pairstat.Summarize(pairs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary)
//
// Using the individual operations:
//
//	r, ok := stats.PearsonCorrelation(pairs)
//	sig, ok := stats.PearsonCorrelationSignificance(pairs)
//	fit, ok := stats.SimpleRegression(pairs)
//	label := stats.CorrelationInterpretation(stats.PearsonCorrelation(pairs))
//
// # Undefined Results
//
// Every statistic that can be undefined for a given sample (too few pairs,
// a constant column) is returned together with a boolean. A false boolean
// means the value must not be used. No operation panics or returns an error
// because of the data it was given.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the report
// package. For individual statistics use the stats package; the underlying
// distribution and special functions live in dist and special.
package pairstat

import (
	"github.com/arloliu/pairstat/report"
	"github.com/arloliu/pairstat/sample"
)

// Pair is one (x, y) observation.
type Pair = sample.Pair

// NewPair creates a Pair from its two values.
func NewPair(x, y float64) Pair {
	return sample.NewPair(x, y)
}

// Summarize computes every statistic of pairs and returns them as a report.
//
// Parameters:
//   - pairs: Sample pairs; the slice is not retained or modified
//   - opts: Optional configuration functions (see report.Option)
//
// Returns:
//   - *report.Summary: The computed summary.
//   - error: An error if an option is invalid.
//
// Available options:
//   - report.WithAlpha(alpha)
//   - report.WithMeanDigits(n) / report.WithStatDigits(n) / report.WithPValueDigits(n)
//   - report.WithLabelPrefix(prefix)
//
// Example:
//
//	summary, err := pairstat.Summarize(pairs, report.WithAlpha(0.01))
func Summarize(pairs []Pair, opts ...report.Option) (*report.Summary, error) {
	return report.Build(pairs, opts...)
}

// ChartSeries returns pairs ordered by X with row labels, ready for plotting.
func ChartSeries(pairs []Pair, opts ...report.Option) (report.ChartSeries, error) {
	return report.NewChartSeries(pairs, opts...)
}
