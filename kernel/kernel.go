// Package kernel provides the elementwise array primitives shared by the
// sift and ensemble-driver packages: copy, add, sub, scale, a fused
// add-multiply, and the envelope mean. All functions operate on contiguous float64 slices
// of equal length and perform no allocation; Add/Sub/Scale/AddMulTo
// delegate to gonum.org/v1/gonum/floats, which panics on a length
// mismatch rather than silently truncating. Callers own buffer
// lifetimes; src and dst must not alias unless identical.
package kernel

import "gonum.org/v1/gonum/floats"

// Copy writes src into dst, min(len(dst), len(src)) elements.
func Copy(dst, src []float64) {
	copy(dst, src)
}

// Add computes dst[i] += src[i] for every element; len(dst) must equal
// len(src).
func Add(dst, src []float64) {
	floats.Add(dst, src)
}

// Sub computes dst[i] -= src[i] for every element; len(dst) must equal
// len(src).
func Sub(dst, src []float64) {
	floats.Sub(dst, src)
}

// Scale computes dst[i] *= k for every element of dst.
func Scale(dst []float64, k float64) {
	floats.Scale(k, dst)
}

// AddMulTo computes dst[i] = a[i] + k*b[i] for every element; dst may
// alias a but not b. a, b, and dst must have equal length.
func AddMulTo(dst, a, b []float64, k float64) {
	copy(dst, a) // a no-op when dst already aliases a
	floats.AddScaled(dst, k, b)
}

// Mean writes dst[i] = 0.5*(upper[i]+lower[i]), the envelope mean
// subtracted from a signal during one sifting iteration. upper, lower,
// and dst must have equal length.
func Mean(dst, upper, lower []float64) {
	copy(dst, upper)
	floats.Add(dst, lower)
	floats.Scale(0.5, dst)
}
