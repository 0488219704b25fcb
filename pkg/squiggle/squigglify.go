package squiggle

import (
	"cmp"
	"math"
	"math/rand/v2"
	"slices"

	errs "github.com/matzehuels/squiggly/pkg/errors"
)

// Defaults for [Options].
const (
	DefaultDxPerc        = 0.1
	DefaultNoiseStrength = 0.5
	DefaultAutocorrPerc  = 5.0
)

// MaxSamples bounds the resampled length so a tiny DxPerc cannot exhaust
// memory.
const MaxSamples = 1_000_000

// Source produces standard normal deviates. *rand.Rand satisfies it.
type Source interface {
	NormFloat64() float64
}

// NewSource returns a seeded PCG generator.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Options control the squiggle transform.
type Options struct {
	DxPerc        float64 // resample step, percent of the x range
	NoiseStrength float64 // standard deviation of the added noise
	AutocorrPerc  float64 // smoothing window, percent of the resampled length
}

// DefaultOptions returns the default transform options.
func DefaultOptions() Options {
	return Options{
		DxPerc:        DefaultDxPerc,
		NoiseStrength: DefaultNoiseStrength,
		AutocorrPerc:  DefaultAutocorrPerc,
	}
}

// Validate checks that the options are in range.
func (o Options) Validate() error {
	if err := errs.ValidatePositive("dx_perc", o.DxPerc); err != nil {
		return err
	}
	if err := errs.ValidateNonNegative("noise_strength", o.NoiseStrength); err != nil {
		return err
	}
	return errs.ValidatePercent("autocorr_perc", o.AutocorrPerc)
}

// Squigglify resamples (x, y) onto a uniform grid, perturbs it with
// Gaussian noise from src and smooths the result. The returned x spans
// min(x) to max(x) inclusive.
//
// src may be nil when NoiseStrength is zero, in which case the output is
// the smoothed interpolation of the input.
func Squigglify(x, y []float64, opts Options, src Source) (newX, newY []float64, err error) {
	if err := errs.ValidateShape(len(x), len(y)); err != nil {
		return nil, nil, err
	}
	if err := errs.ValidateFinite("x", x); err != nil {
		return nil, nil, err
	}
	if err := errs.ValidateFinite("y", y); err != nil {
		return nil, nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, nil, err
	}
	if opts.NoiseStrength > 0 && src == nil {
		return nil, nil, errs.New(errs.ErrCodeConfiguration, "noise_strength %v requires a noise source", opts.NoiseStrength)
	}

	xs, ys := sortPairs(x, y)
	lo, hi := xs[0], xs[len(xs)-1]
	if hi == lo {
		return nil, nil, errs.New(errs.ErrCodeNumericDegeneracy, "x range is zero at %v", lo)
	}

	n, err := sampleCount(opts.DxPerc)
	if err != nil {
		return nil, nil, err
	}
	newX = Linspace(lo, hi, n)
	newY = Interp(newX, xs, ys)
	addNoise(newY, opts.NoiseStrength, src)

	newY, err = Smooth(newY, opts.AutocorrPerc)
	if err != nil {
		return nil, nil, err
	}
	return newX, newY, nil
}

// sampleCount is round(range/dx)+1 with dx = range*dxPerc/100.
func sampleCount(dxPerc float64) (int, error) {
	steps := math.Round(100 / dxPerc)
	if steps+1 > MaxSamples {
		return 0, errs.New(errs.ErrCodeConfiguration, "dx_perc %v needs more than %d samples", dxPerc, MaxSamples)
	}
	return int(steps) + 1, nil
}

func addNoise(y []float64, strength float64, src Source) {
	if strength == 0 {
		return
	}
	for i := range y {
		y[i] += src.NormFloat64() * strength
	}
}

// sortPairs returns x and y ordered by x. Already sorted input is returned
// as is.
func sortPairs(x, y []float64) ([]float64, []float64) {
	if slices.IsSorted(x) {
		return x, y
	}
	idx := make([]int, len(x))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return cmp.Compare(x[a], x[b]) })

	xs, ys := make([]float64, len(x)), make([]float64, len(y))
	for i, j := range idx {
		xs[i], ys[i] = x[j], y[j]
	}
	return xs, ys
}
