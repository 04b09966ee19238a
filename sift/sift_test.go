package sift_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/emd/sift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSiftConstantSignalStaysZero(t *testing.T) {
	signal := make([]float64, 64)
	ws := sift.NewWorkspace(len(signal))

	iters, err := sift.Sift(signal, ws, 4, 50)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, iters, 0)
	for _, v := range signal {
		assert.InDelta(t, 0.0, v, 1e-9)
	}
}

func TestSiftNumSiftingsCap(t *testing.T) {
	n := 128
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 8)
	}
	ws := sift.NewWorkspace(n)

	iters, err := sift.Sift(signal, ws, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, iters)
}

func TestSiftSinusoidConvergesWithSNumber(t *testing.T) {
	n := 256
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = math.Sin(2 * math.Pi * float64(i) / 64)
	}
	ws := sift.NewWorkspace(n)

	iters, err := sift.Sift(signal, ws, 4, 50)
	require.NoError(t, err)
	assert.Greater(t, iters, 0)
	assert.LessOrEqual(t, iters, 50)
}

func TestSiftPreservesLength(t *testing.T) {
	n := 32
	signal := make([]float64, n)
	for i := range signal {
		signal[i] = float64(i % 5)
	}
	ws := sift.NewWorkspace(n)

	_, err := sift.Sift(signal, ws, 0, 3)
	require.NoError(t, err)
	assert.Len(t, signal, n)
}

// TestSiftProperty_TerminatesAndPreservesLength checks, over random
// signals and stopping-criterion parameters, that Sift always
// terminates (never loops past numSiftings when that cap is set) and
// never changes its input's length.
func TestSiftProperty_TerminatesAndPreservesLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(8, 200).Draw(t, "n")
		signal := rapid.SliceOfN(rapid.Float64Range(-50, 50), n, n).Draw(t, "signal")
		sNumber := rapid.IntRange(0, 8).Draw(t, "sNumber")
		numSiftings := rapid.IntRange(1, 30).Draw(t, "numSiftings")

		ws := sift.NewWorkspace(n)
		iters, err := sift.Sift(signal, ws, sNumber, numSiftings)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, iters, 0)
		assert.LessOrEqual(t, iters, numSiftings)
		assert.Len(t, signal, n)
	})
}
