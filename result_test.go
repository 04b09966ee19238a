package emd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/emd"
)

func TestResult_EmptyHasZeroDims(t *testing.T) {
	var r emd.Result
	assert.Equal(t, 0, r.N())
	assert.Equal(t, 0, r.M())
}

func TestResult_Dims(t *testing.T) {
	r := emd.Result{Rows: [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}}
	assert.Equal(t, 3, r.N())
	assert.Equal(t, 2, r.M())
}
