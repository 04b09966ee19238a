package emd

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/emd/emdstat"
	"github.com/katalvlaran/emd/kernel"
)

// EEMD decomposes input by averaging plain EMD over cfg.EnsembleSize
// noisy realisations: each member adds N(0, noiseSigma) to input,
// where noiseSigma = cfg.NoiseStrength * stddev(input), then the
// resulting IMFs are summed under a per-row mutex and divided by
// cfg.EnsembleSize.
//
// Per-member RNG seeding is deriveMemberSeed(cfg.RNGSeed, memberIndex),
// independent of worker assignment, so two single-worker EEMD calls
// with identical parameters are bit-identical (see runEnsemble).
//
// Result.SiftCounts[i] is the mean, across members, of the iteration
// count each member's sift took to extract mode i; Result.DivergedAt[i]
// is the earliest divergence-threshold crossing any member reported
// for that mode, or 0 if none did.
func EEMD(input []float64, m int, cfg Config) (Result, error) {
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

	noiseSigma := cfg.NoiseStrength * emdstat.StdDev(input)

	sum := make([][]float64, m)
	siftCountSum := make([]int, m)
	divergedFirst := make([]int, m)
	locks := make([]chan struct{}, m) // one-slot semaphore per row = mutex
	for i := range sum {
		sum[i] = make([]float64, n)
		locks[i] = make(chan struct{}, 1)
		locks[i] <- struct{}{}
	}

	err := runEnsemble(context.Background(), cfg.EnsembleSize, func(ctx context.Context, member int) error {
		rng := rand.New(rand.NewSource(deriveMemberSeed(cfg.RNGSeed, member)))

		perturbed := make([]float64, n)
		for i, v := range input {
			perturbed[i] = v + rng.NormFloat64()*noiseSigma
		}

		memberResult, err := sifted(perturbed, m, cfg.SNumber, cfg.NumSiftings, nil)
		if err != nil {
			return err
		}
		padToM(&memberResult, m, n)

		for row := 0; row < m; row++ {
			select {
			case <-locks[row]:
			case <-ctx.Done():
				return ctx.Err()
			}
			kernel.Add(sum[row], memberResult.Rows[row])
			siftCountSum[row] += memberResult.SiftCounts[row]
			d := memberResult.DivergedAt[row]
			if d != 0 && (divergedFirst[row] == 0 || d < divergedFirst[row]) {
				divergedFirst[row] = d
			}
			locks[row] <- struct{}{}
		}

		return nil
	})
	if err != nil {
		return Result{}, err
	}

	siftCounts := make([]int, m)
	for row := range sum {
		kernel.Scale(sum[row], 1/float64(cfg.EnsembleSize))
		siftCounts[row] = siftCountSum[row] / cfg.EnsembleSize
	}

	return Result{Rows: sum, SiftCounts: siftCounts, DivergedAt: divergedFirst}, nil
}

// padToM extends a per-member result that stopped short of m rows
// (because its residual lost all interior extrema early) by treating
// every skipped IMF row as zero, with a SiftCounts/DivergedAt of 0 to
// match, and repeating the final residual, keeping the ensemble
// accumulation's row count uniform across members.
func padToM(res *Result, m, n int) {
	if len(res.Rows) >= m {
		return
	}

	last := len(res.Rows) - 1
	residual := res.Rows[last]
	residualCounts, residualDiverged := res.SiftCounts[last], res.DivergedAt[last]

	rows := make([][]float64, m)
	siftCounts := make([]int, m)
	divergedAt := make([]int, m)
	copy(rows, res.Rows[:last])
	copy(siftCounts, res.SiftCounts[:last])
	copy(divergedAt, res.DivergedAt[:last])
	for i := last; i < m-1; i++ {
		rows[i] = make([]float64, n)
	}
	rows[m-1] = residual
	siftCounts[m-1] = residualCounts
	divergedAt[m-1] = residualDiverged

	res.Rows = rows
	res.SiftCounts = siftCounts
	res.DivergedAt = divergedAt
}
