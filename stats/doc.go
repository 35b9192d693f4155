// Package stats is the inference engine of pairstat: descriptive statistics,
// Pearson correlation, ordinary least-squares regression and the two-tailed
// significance of an observed correlation over paired samples.
//
// # Undefined Results
//
// Every operation whose mathematical result can be undefined (too few
// pairs, zero variance, non-finite intermediates) returns a comma-ok boolean
// instead of an error or a NaN:
//
//	r, ok := stats.PearsonCorrelation(pairs)
//	if !ok {
//	    // not enough variance or data
//	}
//
// The single deliberate exception is perfect correlation, where
// PearsonCorrelationSignificance reports t = ±Inf with an exact zero
// p-value, the limiting values of the test statistic.
//
// # Usage
//
//	pairs := []sample.Pair{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 5}, {X: 4, Y: 4}}
//
//	if sig, ok := stats.PearsonCorrelationSignificance(pairs); ok {
//	    fmt.Printf("t=%.3f p=%.4f\n", sig.TStatistic, sig.PValue)
//	}
//
//	if fit, ok := stats.SimpleRegression(pairs); ok {
//	    fmt.Println(fit) // y = 0.8000x + 1.5000
//	}
//
//	fmt.Println(stats.CorrelationInterpretation(stats.PearsonCorrelation(pairs)))
//
// # Thread Safety
//
// The package holds no mutable state. All functions are safe for concurrent
// use and never modify the caller's slices.
package stats
