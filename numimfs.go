package emd

import "math/bits"

// NumIMFs returns the default number of IMF rows (including the
// residual) for a signal of length n: 0 for n == 0, 1 for 1 <= n <= 3,
// and floor(log2(n)) for n >= 4.
func NumIMFs(n int) int {
	switch {
	case n <= 0:
		return 0
	case n <= 3:
		return 1
	default:
		return bits.Len(uint(n)) - 1
	}
}
