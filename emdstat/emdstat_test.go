package emdstat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/emd/emdstat"
)

func TestMeanEmpty(t *testing.T) {
	assert.Equal(t, 0.0, emdstat.Mean(nil))
}

func TestMeanKnownValue(t *testing.T) {
	assert.InDelta(t, 2.5, emdstat.Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestStdDevConstant(t *testing.T) {
	assert.Equal(t, 0.0, emdstat.StdDev([]float64{3, 3, 3, 3}))
}

func TestStdDevSingleton(t *testing.T) {
	assert.Equal(t, 0.0, emdstat.StdDev([]float64{5}))
	assert.Equal(t, 0.0, emdstat.StdDev(nil))
}

func TestStdDevKnownValue(t *testing.T) {
	// sample stddev of [1,2,3,4] is sqrt(5/3)
	got := emdstat.StdDev([]float64{1, 2, 3, 4})
	assert.InDelta(t, math.Sqrt(5.0/3.0), got, 1e-12)
}

func TestReconstructEmpty(t *testing.T) {
	assert.Nil(t, emdstat.Reconstruct(nil))
}

func TestReconstructSumsRows(t *testing.T) {
	rows := [][]float64{
		{1, 2, 3},
		{10, 20, 30},
		{100, 200, 300},
	}
	assert.Equal(t, []float64{111, 222, 333}, emdstat.Reconstruct(rows))
}
