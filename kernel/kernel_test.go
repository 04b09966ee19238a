package kernel_test

import (
	"testing"

	"github.com/katalvlaran/emd/kernel"
	"github.com/stretchr/testify/assert"
)

func TestCopy(t *testing.T) {
	dst := make([]float64, 3)
	kernel.Copy(dst, []float64{1, 2, 3})
	assert.Equal(t, []float64{1, 2, 3}, dst)
}

func TestCopyZeroLength(t *testing.T) {
	dst := []float64{}
	kernel.Copy(dst, []float64{1, 2, 3})
	assert.Empty(t, dst)
}

func TestAddSub(t *testing.T) {
	dst := []float64{1, 2, 3}
	kernel.Add(dst, []float64{10, 20, 30})
	assert.Equal(t, []float64{11, 22, 33}, dst)

	kernel.Sub(dst, []float64{1, 2, 3})
	assert.Equal(t, []float64{10, 20, 30}, dst)
}

func TestScale(t *testing.T) {
	dst := []float64{1, 2, 3}
	kernel.Scale(dst, 2)
	assert.Equal(t, []float64{2, 4, 6}, dst)
}

func TestAddMulTo(t *testing.T) {
	dst := make([]float64, 3)
	a := []float64{1, 1, 1}
	b := []float64{2, 2, 2}
	kernel.AddMulTo(dst, a, b, 0.5)
	assert.Equal(t, []float64{2, 2, 2}, dst)
}

func TestMean(t *testing.T) {
	dst := make([]float64, 2)
	kernel.Mean(dst, []float64{2, 4}, []float64{0, 0})
	assert.Equal(t, []float64{1, 2}, dst)
}
