package bemd_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/emd/bemd"
)

func evenDirections(numDirections int) []float64 {
	directions := make([]float64, numDirections)
	for i := range directions {
		directions[i] = 2 * math.Pi * float64(i) / float64(numDirections)
	}
	return directions
}

func TestBEMD_NoDirections(t *testing.T) {
	_, err := bemd.BEMD([]complex128{1, 2, 3}, nil, 2, 4)
	assert.ErrorIs(t, err, bemd.ErrNoDirections)
}

func TestBEMD_ZeroLengthInput(t *testing.T) {
	result, err := bemd.BEMD(nil, evenDirections(8), 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, result.M())
}

func TestBEMD_SingleRowIsInputUnmodified(t *testing.T) {
	x := []complex128{1 + 1i, 2 - 1i, 3 + 0i, -1 + 2i}
	result, err := bemd.BEMD(x, evenDirections(16), 1, 4)
	require.NoError(t, err)
	require.Equal(t, 1, result.M())
	assert.Equal(t, x, result.Rows[0])
}

func TestBEMD_RowCountAndLength(t *testing.T) {
	n := 128
	x := make([]complex128, n)
	for i := range x {
		t := 2 * math.Pi * float64(i) / float64(n)
		x[i] = complex(math.Cos(3*t), math.Sin(3*t))
	}

	result, err := bemd.BEMD(x, evenDirections(32), 4, 8)
	require.NoError(t, err)
	require.Equal(t, 4, result.M())
	for _, row := range result.Rows {
		assert.Len(t, row, n)
	}
}

// TestBEMD_Synthetic mirrors the boundary scenario of a two-component
// complex signal: a slow, high-amplitude rotation plus a fast,
// lower-amplitude one. The first two extracted rows should carry more
// mean magnitude than the third row and the residual.
func TestBEMD_Synthetic(t *testing.T) {
	n := 512
	x := make([]complex128, n)
	for i := range x {
		tt := 2 * math.Pi * float64(i) / float64(n)
		slow := cmplx.Rect(math.Cos(0.3*tt), 2*tt)
		fast := cmplx.Rect(0.3*math.Abs(math.Sin(2.3*tt)), 17*tt)
		x[i] = slow + fast
	}

	result, err := bemd.BEMD(x, evenDirections(64), 4, 10)
	require.NoError(t, err)
	require.Equal(t, 4, result.M())

	magnitude := func(row []complex128) float64 {
		var sum float64
		for _, v := range row {
			sum += cmplx.Abs(v)
		}
		return sum / float64(len(row))
	}

	row0Mag := magnitude(result.Rows[0])
	row1Mag := magnitude(result.Rows[1])
	row2Mag := magnitude(result.Rows[2])
	residualMag := magnitude(result.Rows[3])

	// Both real oscillatory components (the fast 17i term and the
	// slow 2i term) are exhausted by the first two extracted modes,
	// so rows 0 and 1 should each carry substantially more amplitude
	// than the third mode or the final residual, which are left with
	// little beyond sifting leftovers.
	assert.Greater(t, row0Mag, row2Mag)
	assert.Greater(t, row1Mag, row2Mag)
	assert.Greater(t, row0Mag, residualMag)
	assert.Greater(t, row1Mag, residualMag)
}
