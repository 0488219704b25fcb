package squiggle

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Linspace returns n evenly spaced values from start to stop inclusive.
// Both endpoints are exact. n == 1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	out := floats.Span(make([]float64, n), start, stop)
	out[0], out[n-1] = start, stop
	return out
}

// Geomspace returns n values spaced evenly on a log scale from start to
// stop inclusive. Both ends must be positive.
func Geomspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0 || start <= 0 || stop <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	out := floats.LogSpan(make([]float64, n), start, stop)
	out[0], out[n-1] = start, stop
	return out
}

// Interp evaluates the piecewise linear function through (xp, fp) at each
// x. xp must be ascending and non-empty; repeated xp values collapse to
// one knot at the mean of their fp. Values outside [xp[0], xp[len-1]]
// clamp to the end values.
func Interp(x, xp, fp []float64) []float64 {
	kx, ky := knots(xp, fp)
	if len(kx) == 1 {
		return Constant(ky[0], len(x))
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(kx, ky); err != nil {
		panic("squiggle: Interp: " + err.Error())
	}
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = pl.Predict(v)
	}
	return out
}

// knots merges runs of equal xp into one point so the abscissae are
// strictly increasing.
func knots(xp, fp []float64) (kx, ky []float64) {
	kx = make([]float64, 0, len(xp))
	ky = make([]float64, 0, len(fp))
	for i := 0; i < len(xp); {
		j, sum := i, 0.0
		for ; j < len(xp) && xp[j] == xp[i]; j++ {
			sum += fp[j]
		}
		kx = append(kx, xp[i])
		ky = append(ky, sum/float64(j-i))
		i = j
	}
	return kx, ky
}

// Constant returns a slice of n copies of v.
func Constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
