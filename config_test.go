package emd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emd"
)

func TestConfig_DefaultIsValid(t *testing.T) {
	require.NoError(t, emd.DefaultConfig().Validate())
}

func TestConfig_Validate_EnsembleSizeZero(t *testing.T) {
	cfg := emd.DefaultConfig()
	cfg.EnsembleSize = 0

	err := cfg.Validate()
	assert.ErrorIs(t, err, emd.ErrInvalidEnsembleSize)
	assert.True(t, emd.Is(err, emd.InvalidEnsembleSize))
}

func TestConfig_Validate_NegativeNoiseStrength(t *testing.T) {
	cfg := emd.DefaultConfig()
	cfg.NoiseStrength = -0.1

	err := cfg.Validate()
	assert.ErrorIs(t, err, emd.ErrInvalidNoiseStrength)
	assert.True(t, emd.Is(err, emd.InvalidNoiseStrength))
}

func TestConfig_Validate_NoiseOnSingleRealisation(t *testing.T) {
	cfg := emd.DefaultConfig()
	cfg.EnsembleSize = 1
	cfg.NoiseStrength = 0.2

	err := cfg.Validate()
	assert.ErrorIs(t, err, emd.ErrNoiseAddedToEMD)
	assert.True(t, emd.Is(err, emd.NoiseAddedToEMD))
}

func TestConfig_Validate_EnsembleWithoutNoise(t *testing.T) {
	cfg := emd.DefaultConfig()
	cfg.EnsembleSize = 16
	cfg.NoiseStrength = 0

	err := cfg.Validate()
	assert.ErrorIs(t, err, emd.ErrNoNoiseAddedToEEMD)
	assert.True(t, emd.Is(err, emd.NoNoiseAddedToEEMD))
}

func TestConfig_Validate_NoStoppingCriterion(t *testing.T) {
	cfg := emd.DefaultConfig()
	cfg.SNumber = 0
	cfg.NumSiftings = 0

	err := cfg.Validate()
	assert.ErrorIs(t, err, emd.ErrNoConvergencePossible)
	assert.True(t, emd.Is(err, emd.NoConvergencePossible))
}

func TestConfig_Validate_OrderOfChecks(t *testing.T) {
	// EnsembleSize==0 is checked before NoiseStrength<0, so the first
	// violation reported must be InvalidEnsembleSize even though both
	// fields are invalid here.
	cfg := emd.Config{EnsembleSize: 0, NoiseStrength: -1, SNumber: 0, NumSiftings: 0}

	err := cfg.Validate()
	assert.True(t, emd.Is(err, emd.InvalidEnsembleSize))
}

func TestConfig_Validate_EEMDValid(t *testing.T) {
	cfg := emd.Config{EnsembleSize: 16, NoiseStrength: 0.2, SNumber: 4, NumSiftings: 50}
	assert.NoError(t, cfg.Validate())
}
