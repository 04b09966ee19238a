package emd

import (
	"github.com/katalvlaran/emd/extrema"
	"github.com/katalvlaran/emd/kernel"
	"github.com/katalvlaran/emd/sift"
)

// EMD decomposes input into m rows (m-1 IMFs plus a residual) using
// plain, single-realisation sifting. m == 0 requests the default from
// NumIMFs(len(input)). cfg.EnsembleSize must be 1 and
// cfg.NoiseStrength must be 0 (EMD has no ensemble); use EEMD or
// CEEMDAN for noise-assisted averaging.
func EMD(input []float64, m int, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.EnsembleSize != 1 {
		return Result{}, newError(NoiseAddedToEMD, ErrNoiseAddedToEMD, nil)
	}

	return sifted(input, m, cfg.SNumber, cfg.NumSiftings, nil)
}

// sifted runs the single-realisation sifting loop shared by EMD and
// every per-member realisation of EEMD: repeatedly sift the current
// residual to extract one IMF, subtract it, and continue to the next
// mode, stopping early if the residual loses all interior extrema
// before m-1 modes have been extracted. ws may be nil, in which case a
// fresh *sift.Workspace is allocated (EMD and EEMD both pass nil, so
// each EEMD member allocates its own).
func sifted(input []float64, m, sNumber, numSiftings int, ws *sift.Workspace) (Result, error) {
	n := len(input)
	if m == 0 {
		m = NumIMFs(n)
	}
	if n == 0 || m == 0 {
		return Result{Rows: nil}, nil
	}

	rows := make([][]float64, m)
	siftCounts := make([]int, m)
	divergedAt := make([]int, m)

	residual := make([]float64, n)
	kernel.Copy(residual, input)

	if ws == nil {
		ws = sift.NewWorkspace(n)
	}

	lastRow := m - 1
	for i := 0; i < m-1; i++ {
		// A residual with no interior extrema at all (constant or
		// monotone) cannot be sifted further: stop here and let this
		// residual stand as the final row, rather than emitting a
		// sequence of degenerate all-zero IMFs.
		if set := extrema.Find(residual); set.NumMax() <= 2 && set.NumMin() <= 2 {
			lastRow = i
			break
		}

		imf, iters, err := siftOneMode(residual, ws, sNumber, numSiftings)
		if err != nil {
			return Result{}, err
		}

		rows[i] = imf
		siftCounts[i] = iters
		divergedAt[i] = ws.DivergedAt

		kernel.Sub(residual, imf)
	}

	rows[lastRow] = residual

	return Result{
		Rows:       rows[:lastRow+1],
		SiftCounts: siftCounts[:lastRow+1],
		DivergedAt: divergedAt[:lastRow+1],
	}, nil
}

// siftOneMode sifts signal to convergence, producing exactly one IMF,
// without mutating signal itself. It is the unit of work shared by
// sifted's per-mode loop and CEEMDAN's per-member noise/data sifting
// (each of which sifts a single mode at a time against its own
// residual recurrence).
func siftOneMode(signal []float64, ws *sift.Workspace, sNumber, numSiftings int) ([]float64, int, error) {
	working := make([]float64, len(signal))
	kernel.Copy(working, signal)

	iters, err := sift.Sift(working, ws, sNumber, numSiftings)
	if err != nil {
		return nil, 0, classifySiftError(err)
	}

	return working, iters, nil
}

// classifySiftError maps a sift/spline failure onto the package's
// stable ErrorCode taxonomy.
func classifySiftError(err error) error {
	switch {
	case errIsSentinel(err, notEnoughPointsSentinel):
		return newError(NotEnoughPointsForSpline, ErrNotEnoughPointsForSpline, err)
	case errIsSentinel(err, invalidPointsSentinel):
		return newError(InvalidSplinePoints, ErrInvalidSplinePoints, err)
	default:
		return newError(NumericLibraryError, ErrNumericLibraryError, err)
	}
}
