// Package spline builds natural cubic spline envelopes over an
// irregular, strictly increasing knot sequence and evaluates them at
// every integer sample in [0, N). It is the envelope builder used by
// package sift to turn a set of detected extrema into an upper or
// lower envelope.
package spline

import (
	"errors"
	"sort"
)

// Sentinel errors for spline construction, per the stable error
// taxonomy this library exposes through package emd.
var (
	// ErrNotEnoughPoints indicates fewer than one knot was supplied,
	// or, for n >= 3, a scratch buffer shorter than ScratchLen(n).
	ErrNotEnoughPoints = errors.New("spline: at least one knot is required")

	// ErrInvalidPoints indicates xs is not strictly increasing.
	ErrInvalidPoints = errors.New("spline: knot x-coordinates must be strictly increasing")
)

// ScratchLen returns the minimum scratch buffer length Eval needs for n
// knots: max(0, 5n-10), per the sizing rule in the data model.
func ScratchLen(n int) int {
	if n < 3 {
		return 0
	}
	return 5*n - 10
}

// Eval writes out[0..N) = the natural cubic spline (or fallback) through
// (xs[i], ys[i]) for i in [0, n), evaluated at every integer grid point
// 0..N-1. xs must be strictly increasing; requires len(scratch) >=
// ScratchLen(n) when n >= 3 (unused otherwise).
//
// Fallbacks: n == 0 fails with ErrNotEnoughPoints; n == 1 fills out with
// the constant ys[0]; n == 2 performs linear interpolation between the
// two knots, continued along the same line beyond them.
func Eval(xs, ys []float64, n int, scratch []float64, out []float64) error {
	if n <= 0 || len(xs) == 0 || len(ys) == 0 {
		return ErrNotEnoughPoints
	}
	if !sort.SliceIsSorted(xs[:n], func(i, j int) bool { return xs[i] < xs[j] }) {
		return ErrInvalidPoints
	}
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return ErrInvalidPoints
		}
	}

	switch {
	case n == 1:
		fillConstant(out, ys[0])
		return nil
	case n == 2:
		evalLinear(xs, ys, out)
		return nil
	}

	if len(scratch) < ScratchLen(n) {
		return ErrNotEnoughPoints
	}

	m := solveSecondDerivatives(xs, ys, n, scratch)
	evalPiecewise(xs, ys, m, out)

	return nil
}

func fillConstant(out []float64, v float64) {
	for i := range out {
		out[i] = v
	}
}

func evalLinear(xs, ys []float64, out []float64) {
	x0, x1 := xs[0], xs[1]
	y0, y1 := ys[0], ys[1]
	slope := (y1 - y0) / (x1 - x0)

	for j := range out {
		x := float64(j)
		out[j] = y0 + slope*(x-x0)
	}
}

// solveSecondDerivatives solves the tridiagonal system for the natural
// cubic spline's second derivatives at each knot (m[0] = m[n-1] = 0 by
// the natural boundary condition), using the Thomas algorithm over the
// n-2 interior unknowns m[1..n-2]. scratch is carved into three
// (n-2)-length work vectors (forward-difference rhs, cPrime, dPrime)
// plus an (n-1)-length h vector: total 4n-7 doubles, which fits within
// the caller-guaranteed ScratchLen(n) = 5n-10 for every n >= 3.
//
// The returned slice has length n-2 and holds m[1..n-2]; m[0] and
// m[n-1] are always 0 by construction and are handled specially by
// evalPiecewise.
func solveSecondDerivatives(xs, ys []float64, n int, scratch []float64) []float64 {
	h := scratch[0 : n-1]
	rhs := scratch[n-1 : 2*n-3]
	cPrime := scratch[2*n-3 : 3*n-5]
	dPrime := scratch[3*n-5 : 4*n-7]

	for i := 0; i < n-1; i++ {
		h[i] = xs[i+1] - xs[i]
	}

	// Interior equations, reindexed so unknown m[1..n-2] maps to
	// rhs/cPrime/dPrime index 0..n-3: h[i-1]*m[i-1] + 2*(h[i-1]+h[i])*m[i] + h[i]*m[i+1] = 6*(...)
	// for i (0-based knot index) running 1..n-2.
	for i := 1; i <= n-2; i++ {
		rhs[i-1] = 6 * ((ys[i+1]-ys[i])/h[i] - (ys[i]-ys[i-1])/h[i-1])
	}

	// Forward elimination.
	cPrime[0] = h[1] / (2 * (h[0] + h[1]))
	dPrime[0] = rhs[0] / (2 * (h[0] + h[1]))
	for i := 1; i < n-2; i++ {
		denom := 2*(h[i]+h[i+1]) - h[i]*cPrime[i-1]
		cPrime[i] = h[i+1] / denom
		dPrime[i] = (rhs[i] - h[i]*dPrime[i-1]) / denom
	}

	// Back substitution, in place into dPrime (dPrime[i] becomes m[i+1]).
	for i := n - 4; i >= 0; i-- {
		dPrime[i] = dPrime[i] - cPrime[i]*dPrime[i+1]
	}

	return dPrime
}

// mAt returns the second derivative at knot index i (0-based, 0..n-1),
// given interior holds m[1..n-2] at index i-1 and the natural boundary
// condition m[0] = m[n-1] = 0.
func mAt(interior []float64, n, i int) float64 {
	if i == 0 || i == n-1 {
		return 0
	}
	return interior[i-1]
}

// evalPiecewise evaluates the natural cubic spline defined by knots
// (xs,ys) and interior second derivatives m (length n-2, holding
// m[1..n-2]) at every integer grid point in out.
func evalPiecewise(xs, ys, m []float64, out []float64) {
	n := len(xs)
	for j := range out {
		x := float64(j)
		k := locateInterval(xs, x)

		x0, x1 := xs[k], xs[k+1]
		h := x1 - x0

		a := (x1 - x) / h
		b := (x - x0) / h

		mk := mAt(m, n, k)
		mk1 := mAt(m, n, k+1)

		term1 := a*ys[k] + b*ys[k+1]
		term2 := ((a*a*a-a)*mk + (b*b*b-b)*mk1) * (h * h) / 6

		out[j] = term1 + term2
	}
}

// locateInterval binary-searches xs for the interval [xs[k], xs[k+1])
// containing x, clamped to [0, len(xs)-2].
func locateInterval(xs []float64, x float64) int {
	n := len(xs)
	lo, hi := 0, n-2
	if x <= xs[0] {
		return 0
	}
	if x >= xs[n-1] {
		return n - 2
	}

	for lo < hi {
		mid := (lo + hi + 1) / 2
		if xs[mid] <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}
