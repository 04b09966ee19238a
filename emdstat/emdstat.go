// Package emdstat provides the reconstruction and summary-statistics
// helpers used by the ensemble drivers (for noise scaling) and by
// package emd's own tests (for the reconstruction invariant), built on
// gonum.org/v1/gonum/stat and gonum.org/v1/gonum/floats rather than
// hand-rolled loops.
package emdstat

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return stat.Mean(x, nil)
}

// StdDev returns the sample standard deviation of x. Returns 0 for
// len(x) <= 1, where gonum's unbiased estimator would otherwise divide
// by zero.
func StdDev(x []float64) float64 {
	if len(x) <= 1 {
		return 0
	}
	return stat.StdDev(x, nil)
}

// Reconstruct sums the rows of an IMF matrix column-wise, returning
// the reconstructed original signal. For EMD, Reconstruct(result.Rows)
// equals the original input up to floating-point round-off; EEMD's
// rows are ensemble means of noisy inputs, so its sum matches the
// input only approximately. Tests use it to check the reconstruction
// invariant directly instead of re-deriving the sum.
func Reconstruct(rows [][]float64) []float64 {
	if len(rows) == 0 {
		return nil
	}

	out := make([]float64, len(rows[0]))
	for _, row := range rows {
		floats.Add(out, row)
	}

	return out
}
