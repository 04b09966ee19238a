package emd

import (
	"errors"

	"github.com/katalvlaran/emd/spline"
)

var (
	notEnoughPointsSentinel = spline.ErrNotEnoughPoints
	invalidPointsSentinel   = spline.ErrInvalidPoints
)

func errIsSentinel(err, sentinel error) bool {
	return errors.Is(err, sentinel)
}
