// Package squiggle implements the hand-drawn line transform.
//
// # Squigglify
//
// [Squigglify] turns a clean curve into one that looks sketched by hand:
//
//  1. Resample onto a uniform x grid (step = range * DxPerc / 100)
//  2. Add Gaussian noise with standard deviation NoiseStrength
//  3. Smooth with an edge-corrected moving average
//
// The noise comes from an injected [Source]. Seeding it with [NewSource]
// makes the output reproducible; a zero NoiseStrength skips the noise step
// entirely and the result is the smoothed interpolation of the input.
//
// # Smoothing
//
// [Smooth] is a centred box filter whose divisor at each position is the
// number of real samples under the window ([Denominator]). Near the edges
// the window overlaps fewer samples, so the divisor shrinks instead of
// pulling the curve toward zero.
//
// # Gridlines
//
// [Gridlines] builds the ruled lines of a chart: one line per tick, with
// ticks spread evenly over one axis and each line sweeping the other axis
// padded by ExtendPerc. The lines are meant to be passed through
// [Squigglify] with a small noise strength before drawing.
package squiggle
