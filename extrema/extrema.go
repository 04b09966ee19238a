// Package extrema locates strict local maxima, strict local minima, and
// zero-crossings in a real-valued sequence, and extends both extrema
// sets with mirrored virtual endpoints so that upper/lower envelopes
// built from them can be evaluated across the whole sample range
// without extrapolation.
//
// Plateau convention: a plateau is reported as a single extremum at its
// midpoint (floor((a+b)/2)), applied consistently to both maxima and
// minima. This is one of several valid conventions in the EMD
// literature (spec design note); callers should not assume any other
// implementation reports plateaus the same way.
package extrema

// Set holds the detected extrema and zero-crossing count for a signal.
// MaxX/MinX are strictly increasing sample indices (as float64, since
// they double as spline x-coordinates); MaxY/MinY are the corresponding
// sample values. Two virtual endpoints are prepended/appended to each
// of MaxX/MaxY and MinX/MinY.
type Set struct {
	MaxX, MaxY []float64
	MinX, MinY []float64
	NumZC      int
}

// NumMax returns the number of maxima, including the two virtual
// endpoints (0 only for an empty input; every non-empty input gets the
// two virtual endpoints).
func (s Set) NumMax() int { return len(s.MaxX) }

// NumMin returns the number of minima, including the two virtual
// endpoints.
func (s Set) NumMin() int { return len(s.MinX) }

// Find scans x for interior strict extrema (with plateau handling),
// counts zero-crossings, then mirrors the first and last interior
// extremum of each kind across the signal boundary to produce virtual
// endpoint extrema at x=0 and x=len(x)-1. Safe for n=0,1,2 (no interior
// point can be strict in those cases; Find returns an empty Set or a
// Set holding only boundary-derived values).
func Find(x []float64) Set {
	n := len(x)
	if n == 0 {
		return Set{}
	}

	var maxX, maxY, minX, minY []float64

	i := 1
	for i < n-1 {
		if x[i] > x[i-1] {
			// Candidate rising edge into a maximum or a plateau top.
			j := i
			for j < n-1 && x[j+1] == x[j] {
				j++
			}
			if j < n-1 && x[j+1] < x[j] {
				mid := (i + j) / 2
				maxX = append(maxX, float64(mid))
				maxY = append(maxY, x[mid])
			}
			i = j + 1
			continue
		}
		if x[i] < x[i-1] {
			j := i
			for j < n-1 && x[j+1] == x[j] {
				j++
			}
			if j < n-1 && x[j+1] > x[j] {
				mid := (i + j) / 2
				minX = append(minX, float64(mid))
				minY = append(minY, x[mid])
			}
			i = j + 1
			continue
		}
		i++
	}

	numZC := countZeroCrossings(x)

	maxX, maxY = addVirtualEndpoints(x, maxX, maxY, true)
	minX, minY = addVirtualEndpoints(x, minX, minY, false)

	return Set{MaxX: maxX, MaxY: maxY, MinX: minX, MinY: minY, NumZC: numZC}
}

// countZeroCrossings counts index transitions where sign(x[i]) !=
// sign(x[i+1]) and neither is exactly zero; a run of zeros counts as
// one crossing at its first index.
func countZeroCrossings(x []float64) int {
	n := len(x)
	count := 0
	i := 0
	for i < n-1 {
		if x[i] == 0 {
			// Absorb the whole run of zeros as (at most) one crossing,
			// counted when the run is flanked by a genuine sign change.
			j := i
			for j < n && x[j] == 0 {
				j++
			}
			if i > 0 && j < n && sign(x[i-1]) != sign(x[j]) {
				count++
			}
			i = j
			continue
		}
		if i+1 < n && x[i+1] != 0 && sign(x[i]) != sign(x[i+1]) {
			count++
		}
		i++
	}

	return count
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// addVirtualEndpoints prepends and appends mirrored extrema so the
// resulting x-coordinates span from <=0 to >=len(x)-1. Mirroring
// reflects the first/last interior extremum across the boundary
// sample; the reflected y-value is the boundary sample's own value
// when the boundary sample is strictly more extreme than its adjacent
// sample or equal to the mirrored extremum's value, otherwise the
// mirrored extremum's y-value (same type as the inner neighbour).
func addVirtualEndpoints(x, ex, ey []float64, isMax bool) ([]float64, []float64) {
	n := len(x)
	if n == 0 {
		return ex, ey
	}

	// moreExtreme reports whether a is more extreme than b for this
	// detector's kind (greater for maxima, lesser for minima).
	moreExtreme := func(a, b float64) bool {
		if isMax {
			return a > b
		}
		return a < b
	}

	var headX, headY, tailX, tailY float64

	if len(ex) == 0 {
		// No interior extrema: mirror the endpoints themselves so the
		// envelope still has two knots spanning [0, n-1].
		headX, headY = 0, x[0]
		tailX, tailY = float64(n-1), x[n-1]
	} else {
		firstX, firstY := ex[0], ey[0]
		lastX, lastY := ex[len(ex)-1], ey[len(ey)-1]

		// Reflect the first interior extremum across sample 0. The
		// boundary sample is "itself extreme" when it is strictly more
		// extreme than its neighbour at index 1 (or equals the mirrored
		// extremum's value); in that case its own value anchors the
		// envelope, otherwise we carry the mirrored inner neighbour's
		// value across the boundary.
		mirroredX := -firstX
		boundaryIsExtreme := n > 1 && moreExtreme(x[0], x[1]) || x[0] == firstY
		if boundaryIsExtreme {
			headX, headY = mirroredX, x[0]
		} else {
			headX, headY = mirroredX, firstY
		}

		// Reflect the last interior extremum across sample n-1.
		mirroredLastX := float64(2*(n-1)) - lastX
		boundaryIsExtremeLast := n > 1 && moreExtreme(x[n-1], x[n-2]) || x[n-1] == lastY
		if boundaryIsExtremeLast {
			tailX, tailY = mirroredLastX, x[n-1]
		} else {
			tailX, tailY = mirroredLastX, lastY
		}
	}

	outX := make([]float64, 0, len(ex)+2)
	outY := make([]float64, 0, len(ey)+2)
	outX = append(outX, headX)
	outY = append(outY, headY)
	outX = append(outX, ex...)
	outY = append(outY, ey...)
	outX = append(outX, tailX)
	outY = append(outY, tailY)

	return outX, outY
}
