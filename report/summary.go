package report

import (
	"strconv"

	"github.com/arloliu/pairstat/sample"
	"github.com/arloliu/pairstat/stats"
)

// Summary collects every engine result for one sample collection.
//
// Pointer fields are nil when the underlying value is undefined.
type Summary struct {
	// Count is the number of pairs summarized.
	Count int
	// Fingerprint is the order-sensitive xxHash64 of the pairs.
	Fingerprint uint64
	// MeanX and MeanY are the column means.
	MeanX *float64
	MeanY *float64
	// Correlation is the Pearson coefficient r.
	Correlation *float64
	// Significance is the t-test of r against zero.
	Significance *stats.Significance
	// Regression is the least-squares line of Y on X.
	Regression *stats.Regression
	// Strength is the qualitative band of |r|.
	Strength stats.Strength
	// Interpretation is the human-readable description of Strength.
	Interpretation string
	// Significant reports whether the p-value is below the configured alpha.
	// It is false when Significance is nil.
	Significant bool

	config Config
}

// Line is one labelled, formatted value of a Summary.
type Line struct {
	Label string
	Value string
}

// Build computes a Summary of pairs.
//
// Degenerate data never causes an error; it shows up as nil fields. Build
// only fails when an option is invalid, in which case the error wraps
// ErrInvalidOption.
//
// Parameters:
//   - pairs: Sample pairs; the slice is not retained or modified
//   - opts: Optional configuration (alpha, display precision, label prefix)
//
// Returns:
//   - *Summary: The computed summary
//   - error: Option validation error if any
func Build(pairs []sample.Pair, opts ...Option) (*Summary, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	xs, ys := sample.Columns(pairs)
	s := &Summary{
		Count:       len(pairs),
		Fingerprint: sample.Fingerprint(pairs),
		config:      cfg,
	}

	if m, ok := stats.Mean(xs); ok {
		s.MeanX = &m
	}
	if m, ok := stats.Mean(ys); ok {
		s.MeanY = &m
	}

	r, rOK := stats.PearsonCorrelation(pairs)
	if rOK {
		s.Correlation = &r
	}
	s.Strength = stats.ClassifyCorrelation(r, rOK)
	s.Interpretation = s.Strength.Label()

	if sig, ok := stats.PearsonCorrelationSignificance(pairs); ok {
		s.Significance = &sig
		s.Significant = sig.IsSignificant(cfg.Alpha)
	}
	if fit, ok := stats.SimpleRegression(pairs); ok {
		s.Regression = &fit
	}

	return s, nil
}

// Config returns the configuration the summary was built with.
func (s *Summary) Config() Config {
	return s.config
}

// Lines returns the summary as labelled values formatted with the configured
// precision.
func (s *Summary) Lines() []Line {
	cfg := s.config

	tStat, pValue, significant := NotAvailable, NotAvailable, NotAvailable
	if s.Significance != nil {
		tStat = FormatValue(s.Significance.TStatistic, true, cfg.StatDigits)
		pValue = FormatPValue(s.Significance.PValue, true, cfg.PValueDigits)
		significant = "no"
		if s.Significant {
			significant = "yes"
		}
	}

	model := NotAvailable
	if s.Regression != nil {
		model = "a=" + FormatValue(s.Regression.Slope, true, cfg.StatDigits) +
			", b=" + FormatValue(s.Regression.Intercept, true, cfg.StatDigits)
	}

	return []Line{
		{Label: "Responses", Value: strconv.Itoa(s.Count)},
		{Label: "Mean X", Value: formatPtr(s.MeanX, cfg.MeanDigits)},
		{Label: "Mean Y", Value: formatPtr(s.MeanY, cfg.MeanDigits)},
		{Label: "Pearson r", Value: formatPtr(s.Correlation, cfg.StatDigits)},
		{Label: "t-statistic", Value: tStat},
		{Label: "p-value (two-tailed)", Value: pValue},
		{Label: "Significant at " + strconv.FormatFloat(cfg.Alpha, 'g', -1, 64), Value: significant},
		{Label: "Linear model (y = ax + b)", Value: model},
		{Label: "Strength", Value: s.Strength.String()},
		{Label: "Interpretation", Value: s.Interpretation},
	}
}

// String renders Lines as "label: value" rows separated by newlines.
func (s *Summary) String() string {
	if s == nil {
		return "Summary{nil}"
	}

	return joinLines(s.Lines())
}
