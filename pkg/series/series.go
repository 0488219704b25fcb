package series

import (
	"time"

	"golang.org/x/exp/constraints"

	errs "github.com/matzehuels/squiggly/pkg/errors"
)

// Number is any built-in integer or floating point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Series is an ordered sequence of (x, y) pairs.
//
// When XIsTime is set, X holds Unix seconds (see [Unix]) and consumers
// format x values as dates.
type Series struct {
	X       []float64
	Y       []float64
	XIsTime bool
}

// New copies x and y into a validated Series.
func New(x, y []float64) (Series, error) {
	s := Series{
		X: append([]float64(nil), x...),
		Y: append([]float64(nil), y...),
	}
	if err := s.Validate(); err != nil {
		return Series{}, err
	}
	return s, nil
}

// Of converts numeric slices of any integer or float type into a Series.
func Of[X, Y Number](x []X, y []Y) (Series, error) {
	return New(Floats(x), Floats(y))
}

// FromTimes builds a Series with a timestamp-valued x axis.
func FromTimes(ts []time.Time, y []float64) (Series, error) {
	x := make([]float64, len(ts))
	for i, t := range ts {
		x[i] = Unix(t)
	}
	s, err := New(x, y)
	if err != nil {
		return Series{}, err
	}
	s.XIsTime = true
	return s, nil
}

// Floats converts a slice of numbers to float64.
func Floats[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Validate checks the shape invariants: more than three points on each
// axis, equal lengths and finite values.
func (s Series) Validate() error {
	if err := errs.ValidateShape(len(s.X), len(s.Y)); err != nil {
		return err
	}
	if err := errs.ValidateFinite("x", s.X); err != nil {
		return err
	}
	return errs.ValidateFinite("y", s.Y)
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.X) }

// XBounds returns the bounds of the x values, flagged as time when the
// series has a timestamp axis.
func (s Series) XBounds() Bounds {
	b := BoundsOf(s.X)
	b.Time = s.XIsTime
	return b
}

// YBounds returns the bounds of the y values.
func (s Series) YBounds() Bounds { return BoundsOf(s.Y) }
