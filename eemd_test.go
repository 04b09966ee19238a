package emd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emd"
)

func TestEEMD_RowLengthsMatchInput(t *testing.T) {
	n := 128
	input := make([]float64, n)
	for i := range input {
		input[i] = math.Sin(2 * math.Pi * float64(i) / 20)
	}

	cfg := emd.Config{EnsembleSize: 4, NoiseStrength: 0.1, SNumber: 4, NumSiftings: 30, RNGSeed: 7}
	result, err := emd.EEMD(input, 0, cfg)
	require.NoError(t, err)

	for _, row := range result.Rows {
		assert.Len(t, row, n)
	}
}

func TestEEMD_DifferentSeedsDiverge(t *testing.T) {
	n := 128
	input := make([]float64, n)
	for i := range input {
		input[i] = math.Sin(2 * math.Pi * float64(i) / 20)
	}

	cfgA := emd.Config{EnsembleSize: 4, NoiseStrength: 0.3, SNumber: 4, NumSiftings: 30, RNGSeed: 1}
	cfgB := cfgA
	cfgB.RNGSeed = 2

	a, err := emd.EEMD(input, 0, cfgA)
	require.NoError(t, err)
	b, err := emd.EEMD(input, 0, cfgB)
	require.NoError(t, err)

	var anyDiff bool
	for i := range a.Rows[0] {
		if a.Rows[0][i] != b.Rows[0][i] {
			anyDiff = true
			break
		}
	}
	assert.True(t, anyDiff, "different RNG seeds should produce different noise realisations")
}

func TestEEMD_ZeroLengthInput(t *testing.T) {
	cfg := emd.Config{EnsembleSize: 4, NoiseStrength: 0.1, SNumber: 4, NumSiftings: 30}
	result, err := emd.EEMD(nil, 0, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0, result.M())
}
