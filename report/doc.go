// Package report assembles every pairstat result for one sample collection
// into a Summary ready for presentation.
//
// A Summary holds the raw numbers (with nil for undefined values), the
// correlation strength and its interpretation, and can render itself as
// labelled, formatted lines. Formatting follows a few fixed rules: undefined
// values render as "N/A", and p-values below the display precision render as
// "< 0.0001" rather than rounding to zero.
//
// # Usage
//
//	summary, err := report.Build(pairs,
//	    report.WithAlpha(0.01),
//	    report.WithStatDigits(4),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(summary)
//
// NewChartSeries orders the same pairs by X for plotting both columns
// against a shared index axis.
package report
