// Package bemd implements bivariate/complex-plane Empirical Mode
// Decomposition: the multivariate counterpart to package emd's
// real-valued EMD/EEMD/CEEMDAN, operating on a single complex signal
// projected onto a fan of directions instead of a real signal's
// maxima/minima pair.
package bemd

import (
	"context"
	"errors"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/emd"
	"github.com/katalvlaran/emd/extrema"
	"github.com/katalvlaran/emd/spline"
)

// ErrNoDirections indicates BEMD was called with an empty direction set.
var ErrNoDirections = errors.New("bemd: at least one projection direction is required")

// Result holds the outcome of a BEMD call: the row-major M×N complex
// IMF matrix (row M-1 is the residual), mirroring emd.Result's shape
// for the complex-valued variant.
type Result struct {
	Rows [][]complex128
}

// N returns the sample length of each row, or 0 if Result is empty.
func (r Result) N() int {
	if len(r.Rows) == 0 {
		return 0
	}
	return len(r.Rows[0])
}

// M returns the number of rows (IMFs plus residual).
func (r Result) M() int { return len(r.Rows) }

// BEMD decomposes x into m-1 IMFs plus a residual by sifting in the
// complex plane against a fan of projection directions. Each IMF is
// produced by exactly numSiftings applications of the direction-fan
// mean-envelope subtraction (there is no S-number analogue for the
// multivariate case: §4.E fixes a constant sifting count per mode).
// m == 0 requests the default row count, emd.NumIMFs(len(x)); m == 1
// returns a single row (the residual, unmodified input).
func BEMD(x []complex128, directions []float64, m, numSiftings int) (Result, error) {
	if len(directions) == 0 {
		return Result{}, ErrNoDirections
	}

	n := len(x)
	if m == 0 {
		m = emd.NumIMFs(n)
	}
	if n == 0 || m == 0 {
		return Result{Rows: nil}, nil
	}
	if m == 1 {
		residual := make([]complex128, n)
		copy(residual, x)
		return Result{Rows: [][]complex128{residual}}, nil
	}

	residual := make([]complex128, n)
	copy(residual, x)

	rows := make([][]complex128, m)

	for outer := 0; outer < m-1; outer++ {
		working := make([]complex128, n)
		copy(working, residual)

		for iter := 0; iter < numSiftings; iter++ {
			mean, err := directionMean(working, directions)
			if err != nil {
				return Result{}, err
			}
			for i := range working {
				working[i] -= mean[i]
			}
		}

		rows[outer] = working
		for i := range residual {
			residual[i] -= working[i]
		}
	}

	rows[m-1] = residual

	return Result{Rows: rows}, nil
}

// directionMean computes one sift-once pass: for every direction,
// project x onto it, build the upper envelope of the projection from
// its maxima, and accumulate e^{iφ}·envelope. Directions are reduced
// in index order regardless of completion order, so the result is
// independent of goroutine scheduling (only floating-point
// associativity within the fixed summation order matters).
func directionMean(x []complex128, directions []float64) ([]complex128, error) {
	n := len(x)
	numDirections := len(directions)

	contributions := make([][]complex128, numDirections)

	workers := runtime.GOMAXPROCS(0)
	if workers > numDirections {
		workers = numDirections
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	for d := 0; d < numDirections; d++ {
		d := d
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			envelope, dirUnit, err := projectAndEnvelope(x, directions[d])
			if err != nil {
				return err
			}

			contribution := make([]complex128, n)
			for i, e := range envelope {
				contribution[i] = dirUnit * complex(e, 0)
			}
			contributions[d] = contribution

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	mean := make([]complex128, n)
	for d := 0; d < numDirections; d++ {
		for i := range mean {
			mean[i] += contributions[d][i]
		}
	}

	scale := complex(2/float64(numDirections), 0)
	for i := range mean {
		mean[i] *= scale
	}

	return mean, nil
}

// projectAndEnvelope projects x onto direction phi and builds the
// upper envelope (natural cubic spline through the projection's
// maxima) at every sample index.
func projectAndEnvelope(x []complex128, phi float64) ([]float64, complex128, error) {
	n := len(x)
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	p := make([]float64, n)
	for i, v := range x {
		p[i] = real(v)*cosPhi + imag(v)*sinPhi
	}

	set := extrema.Find(p)

	envelope := make([]float64, n)
	scratch := make([]float64, spline.ScratchLen(len(set.MaxX)))
	if err := spline.Eval(set.MaxX, set.MaxY, len(set.MaxX), scratch, envelope); err != nil {
		return nil, 0, err
	}

	return envelope, complex(cosPhi, sinPhi), nil
}
