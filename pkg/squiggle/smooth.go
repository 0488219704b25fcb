package squiggle

import (
	"math"

	errs "github.com/matzehuels/squiggly/pkg/errors"
)

// Window returns the smoothing window for a signal of n samples:
// floor(n * perc / 100).
func Window(n int, perc float64) int {
	return int(math.Floor(float64(n) * perc / 100))
}

// Denominator returns, for each of n positions, how many real samples fall
// under a centred window of size w. It ramps from w/2+1 at the edges up to
// the full window in the interior and back down, and is symmetric:
// d[i] == d[n-1-i]. Even windows are widened to w+1 so the window stays
// centred.
func Denominator(n, w int) []float64 {
	h := w / 2
	d := make([]float64, n)
	for i := range d {
		lo, hi := max(0, i-h), min(n-1, i+h)
		d[i] = float64(hi - lo + 1)
	}
	return d
}

// Smooth applies an edge-corrected moving average to y. The window is
// derived from autocorrPerc with [Window]. The output has the same length
// as y. The effective width is W+1 for even W, so the default W=50 averages
// 51 samples in the interior.
//
// A window of zero or less fails with NUMERIC_DEGENERACY. A window of one
// returns a copy of y.
func Smooth(y []float64, autocorrPerc float64) ([]float64, error) {
	w := Window(len(y), autocorrPerc)
	if w <= 0 {
		return nil, errs.New(errs.ErrCodeNumericDegeneracy,
			"smoothing window is %d for %d samples at %v%%", w, len(y), autocorrPerc)
	}
	if w == 1 {
		return append([]float64(nil), y...), nil
	}
	return boxFilter(y, w/2), nil
}

// boxFilter averages y over [i-h, i+h], counting only in-range samples.
func boxFilter(y []float64, h int) []float64 {
	n := len(y)
	prefix := make([]float64, n+1)
	for i, v := range y {
		prefix[i+1] = prefix[i] + v
	}
	out := make([]float64, n)
	for i := range out {
		lo, hi := max(0, i-h), min(n-1, i+h)
		out[i] = (prefix[hi+1] - prefix[lo]) / float64(hi-lo+1)
	}
	return out
}
