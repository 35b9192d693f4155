// Package dist provides the cumulative distribution of Student's t
// distribution, built on the regularized incomplete beta function from
// package special.
package dist
