package emd

import (
	"context"
	"math/rand"
	"sync"

	"github.com/katalvlaran/emd/emdstat"
	"github.com/katalvlaran/emd/extrema"
	"github.com/katalvlaran/emd/kernel"
	"github.com/katalvlaran/emd/sift"
)

// CEEMDAN decomposes input with Complete Ensemble EMD with Adaptive
// Noise: unlike EEMD, modes are extracted one at a time against a
// shared residual, and each ensemble member carries its own evolving
// noise mode (the noise-mode recurrence) instead of a single fixed
// perturbation reused across modes.
//
// For every ensemble member en_i, a unit-variance noise vector is
// seeded with cfg.RNGSeed+en_i (matching EMD/EEMD's per-member RNG
// policy). For each mode i: every member perturbs the current shared
// residual with noise scaled to noise_strength·stddev(residual), sifts
// one mode of the perturbed signal, and the results are averaged under
// a single output mutex into mode i; the residual is then updated and
// each member's own noise vector is advanced one sift generation
// (noise_residual -= sifted_noise past the first mode), so later modes
// see progressively lower-frequency noise, matching real-noise
// spectral behaviour more closely than the same fixed noise used for
// every mode.
//
// Result.SiftCounts[i] is the mean, over the ensemble, of the
// iteration count each member's data-mode sift took to extract mode i;
// Result.DivergedAt[i] is the earliest divergence-threshold crossing
// any member reported for that mode, or 0 if none did.
func CEEMDAN(input []float64, m int, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	if cfg.EnsembleSize <= 1 {
		return Result{}, newError(NoNoiseAddedToEEMD, ErrNoNoiseAddedToEEMD, nil)
	}

	n := len(input)
	if m == 0 {
		m = NumIMFs(n)
	}
	if n == 0 || m == 0 {
		return Result{Rows: nil}, nil
	}

	size := cfg.EnsembleSize
	noise := make([][]float64, size)
	noiseResidual := make([][]float64, size)
	dataWs := make([]*sift.Workspace, size)
	noiseWs := make([]*sift.Workspace, size)
	for en := 0; en < size; en++ {
		rng := rand.New(rand.NewSource(deriveMemberSeed(cfg.RNGSeed, en)))
		noise[en] = make([]float64, n)
		for i := range noise[en] {
			noise[en][i] = rng.NormFloat64()
		}
		noiseResidual[en] = make([]float64, n)
		dataWs[en] = sift.NewWorkspace(n)
		noiseWs[en] = sift.NewWorkspace(n)
	}

	residual := make([]float64, n)
	kernel.Copy(residual, input)

	rows := make([][]float64, m)
	siftCounts := make([]int, m)
	divergedAt := make([]int, m)
	lastRow := m - 1

	for imfI := 0; imfI < m-1; imfI++ {
		if set := extrema.Find(residual); set.NumMax() <= 2 && set.NumMin() <= 2 {
			lastRow = imfI
			break
		}

		output := make([]float64, n)
		var outMu sync.Mutex
		itersSum := 0
		divergedFirst := 0

		err := runEnsemble(context.Background(), size, func(ctx context.Context, en int) error {
			perturbed := perturb(residual, noise[en], cfg.NoiseStrength)

			memberMode, iters, err := siftOneMode(perturbed, dataWs[en], cfg.SNumber, cfg.NumSiftings)
			if err != nil {
				return err
			}
			memberDivergedAt := dataWs[en].DivergedAt

			outMu.Lock()
			kernel.Add(output, memberMode)
			itersSum += iters
			if memberDivergedAt != 0 && (divergedFirst == 0 || memberDivergedAt < divergedFirst) {
				divergedFirst = memberDivergedAt
			}
			outMu.Unlock()

			return advanceNoise(imfI, noise[en], noiseResidual[en], noiseWs[en], cfg.SNumber, cfg.NumSiftings)
		})
		if err != nil {
			return Result{}, err
		}

		kernel.Scale(output, 1/float64(size))
		rows[imfI] = output
		siftCounts[imfI] = itersSum / size
		divergedAt[imfI] = divergedFirst

		kernel.Sub(residual, output)
	}

	rows[lastRow] = residual

	return Result{
		Rows:       rows[:lastRow+1],
		SiftCounts: siftCounts[:lastRow+1],
		DivergedAt: divergedAt[:lastRow+1],
	}, nil
}

// perturb returns residual + sigma*noise, where sigma is scaled so the
// injected noise has amplitude noiseStrength relative to residual's own
// spread, independent of the (unit-variance, but never re-normalised)
// noise vector's realised spread; sigma is zero if noise happens to be
// constant.
func perturb(residual, noise []float64, noiseStrength float64) []float64 {
	noiseSigma := emdstat.StdDev(noise)
	sigma := 0.0
	if noiseSigma != 0 {
		sigma = noiseStrength * emdstat.StdDev(residual) / noiseSigma
	}

	out := make([]float64, len(residual))
	kernel.AddMulTo(out, residual, noise, sigma)

	return out
}

// advanceNoise implements the per-member noise-mode recurrence: on the
// first outer mode, the member's current noise vector is sifted once
// and the result saved verbatim as its noise residual; on every
// subsequent mode, the previous noise residual becomes this round's
// noise vector, is sifted once, and the newly sifted mode is subtracted
// back out of the residual, so the next round's noise is always one
// sift generation lower-frequency than the last.
func advanceNoise(imfI int, noise, noiseResidual []float64, ws *sift.Workspace, sNumber, numSiftings int) error {
	if imfI > 0 {
		kernel.Copy(noise, noiseResidual)
	}

	siftedNoise, _, err := siftOneMode(noise, ws, sNumber, numSiftings)
	if err != nil {
		return err
	}

	if imfI == 0 {
		kernel.Copy(noiseResidual, siftedNoise)
	} else {
		kernel.Sub(noiseResidual, siftedNoise)
	}

	return nil
}
