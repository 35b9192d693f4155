// Package special implements the special functions behind pairstat's
// significance tests: the log-gamma function and the regularized incomplete
// beta function.
//
// Both are implemented from first principles with fixed, documented
// tolerances so results are reproducible across platforms:
//
//   - LnGamma uses a Lanczos approximation (g = 7, nine coefficients) with
//     the reflection formula below 0.5.
//   - RegIncBeta evaluates a continued fraction with the modified Lentz
//     algorithm, bounded at MaxIterations terms with relative tolerance
//     Epsilon.
//
// All functions are pure and safe for concurrent use.
package special
