package report

import (
	"strconv"

	"github.com/arloliu/pairstat/sample"
)

// ChartSeries holds two parallel series for plotting X and Y against a shared
// row axis, ordered by ascending X.
type ChartSeries struct {
	// Labels names each row, "<prefix> 1" through "<prefix> n".
	Labels []string
	// X and Y are the columns in the same row order as Labels.
	X []float64
	Y []float64
}

// Len returns the number of rows.
func (c ChartSeries) Len() int {
	return len(c.Labels)
}

// NewChartSeries orders pairs by X (stable for ties) and labels the rows
// with the configured prefix.
func NewChartSeries(pairs []sample.Pair, opts ...Option) (ChartSeries, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return ChartSeries{}, err
	}

	sorted := sample.SortedByX(pairs)
	xs, ys := sample.Columns(sorted)
	labels := make([]string, len(sorted))
	for i := range sorted {
		labels[i] = rowLabel(cfg.LabelPrefix, i+1)
	}

	return ChartSeries{Labels: labels, X: xs, Y: ys}, nil
}

func rowLabel(prefix string, row int) string {
	if prefix == "" {
		return strconv.Itoa(row)
	}

	return prefix + " " + strconv.Itoa(row)
}
