// Package sift implements the per-signal sifting loop: repeatedly
// subtracting the mean of the upper/lower cubic-spline envelopes from
// a signal until a stopping criterion fires, producing one intrinsic
// mode function (IMF).
package sift

import (
	"errors"

	"github.com/katalvlaran/emd/extrema"
	"github.com/katalvlaran/emd/kernel"
	"github.com/katalvlaran/emd/spline"
)

// DefaultDivergenceThreshold is the iteration count at which Sift
// reports a divergence warning without stopping, per the stopping
// sentinel design note.
const DefaultDivergenceThreshold = 10000

// ErrSplineFailure wraps any error returned by the envelope builder
// while sifting; it is never returned on its own, always via %w.
var ErrSplineFailure = errors.New("sift: envelope construction failed")

// Workspace holds the pre-allocated scratch buffers for one sifter
// instance, sized for the worst case (every sample an extremum).
// A Workspace is not safe for concurrent use; each ensemble worker
// owns one for its lifetime.
type Workspace struct {
	n int

	upper, lower   []float64
	mean           []float64
	splineScratch  []float64
	prevCounts     [3]int // (num_max, num_min, num_zc) of the previous iteration
	stableStreak   int
	haveCounts     bool
	DivergedAt     int // 0 if the sift never crossed DefaultDivergenceThreshold
	DivergenceStep int // threshold actually used for the most recent Sift call
}

// NewWorkspace allocates a Workspace sized for signals of length n. The
// spline scratch buffer is sized for the worst case where every sample
// is an extremum (n knots plus two virtual endpoints).
func NewWorkspace(n int) *Workspace {
	return &Workspace{
		n:             n,
		upper:         make([]float64, n),
		lower:         make([]float64, n),
		mean:          make([]float64, n),
		splineScratch: make([]float64, spline.ScratchLen(n+2)),
	}
}

// reset clears the convergence bookkeeping before a fresh Sift call;
// the numeric buffers are overwritten wholesale each iteration so they
// need no clearing.
func (w *Workspace) reset() {
	w.prevCounts = [3]int{}
	w.stableStreak = 0
	w.haveCounts = false
	w.DivergedAt = 0
}

// Sift drives signal toward IMF shape in place, returning the number
// of iterations performed. sNumber <= 0 disables the S-number
// criterion; numSiftings <= 0 disables the fixed iteration cap. At
// least one of the two must be enabled by the caller (package emd's
// Config.Validate enforces this); Sift itself does not re-validate.
func Sift(signal []float64, ws *Workspace, sNumber, numSiftings int) (iterations int, err error) {
	ws.reset()
	threshold := DefaultDivergenceThreshold
	ws.DivergenceStep = threshold

	for iter := 1; ; iter++ {
		set := extrema.Find(signal)
		numMax, numMin, numZC := set.NumMax(), set.NumMin(), set.NumZC

		if sNumber > 0 {
			if ws.sNumberFires(numMax, numMin, numZC, sNumber) {
				return iter - 1, nil
			}
		}
		if numSiftings > 0 && iter > numSiftings {
			return iter - 1, nil
		}

		if err := spline.Eval(set.MaxX, set.MaxY, len(set.MaxX), ws.splineScratch, ws.upper); err != nil {
			return iter - 1, errJoin(ErrSplineFailure, err)
		}
		if err := spline.Eval(set.MinX, set.MinY, len(set.MinX), ws.splineScratch, ws.lower); err != nil {
			return iter - 1, errJoin(ErrSplineFailure, err)
		}

		kernel.Mean(ws.mean, ws.upper, ws.lower)
		kernel.Sub(signal, ws.mean)

		if iter == threshold && ws.DivergedAt == 0 {
			ws.DivergedAt = iter
		}
	}
}

// sNumberFires implements the S-number stopping criterion: the counts
// must change by at most 1 in sum-of-absolute-differences from the
// previous iteration, for sNumber consecutive iterations, and the
// interior extrema/zero-crossing balance |numMax+numMin-4-numZC| <= 1
// must hold (accounting for the two virtual endpoint extrema on each
// of the two envelopes).
func (w *Workspace) sNumberFires(numMax, numMin, numZC, sNumber int) bool {
	defer func() {
		w.prevCounts = [3]int{numMax, numMin, numZC}
		w.haveCounts = true
	}()

	if !w.haveCounts {
		w.stableStreak = 0
		return false
	}

	diff := absInt(numMax-w.prevCounts[0]) + absInt(numMin-w.prevCounts[1]) + absInt(numZC-w.prevCounts[2])
	balanced := absInt(numMax+numMin-4-numZC) <= 1

	if diff <= 1 && balanced {
		w.stableStreak++
	} else {
		w.stableStreak = 0
	}

	return w.stableStreak >= sNumber
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// errJoin wraps inner beneath sentinel so errors.Is(err, sentinel) and
// errors.Is(err, inner) both succeed.
func errJoin(sentinel, inner error) error {
	return &wrappedErr{sentinel: sentinel, inner: inner}
}

type wrappedErr struct {
	sentinel error
	inner    error
}

func (e *wrappedErr) Error() string { return e.sentinel.Error() + ": " + e.inner.Error() }

func (e *wrappedErr) Unwrap() []error { return []error{e.sentinel, e.inner} }
