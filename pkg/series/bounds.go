package series

import (
	"math"
	"time"
)

// Bounds is the (min, max) extent of one axis. Range is derived.
type Bounds struct {
	Min  float64
	Max  float64
	Time bool // values are Unix seconds
}

// NewBounds returns numeric bounds, swapping the ends if needed.
func NewBounds(lo, hi float64) Bounds {
	if hi < lo {
		lo, hi = hi, lo
	}
	return Bounds{Min: lo, Max: hi}
}

// TimeBounds returns bounds for a timestamp axis.
func TimeBounds(from, to time.Time) Bounds {
	b := NewBounds(Unix(from), Unix(to))
	b.Time = true
	return b
}

// BoundsOf returns the min and max of values. Empty input yields zero bounds.
func BoundsOf(values []float64) Bounds {
	if len(values) == 0 {
		return Bounds{}
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return Bounds{Min: lo, Max: hi}
}

// Range returns Max - Min.
func (b Bounds) Range() float64 { return b.Max - b.Min }

// Contains reports whether v lies within the closed interval.
func (b Bounds) Contains(v float64) bool { return b.Min <= v && v <= b.Max }

// Extend pads both ends by perc percent of the range.
func (b Bounds) Extend(perc float64) Bounds {
	pad := b.Range() * perc / 100
	b.Min -= pad
	b.Max += pad
	return b
}

// Union returns the smallest bounds covering both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{Min: min(b.Min, o.Min), Max: max(b.Max, o.Max), Time: b.Time || o.Time}
}

// Origin is the value treated as the reference axis position: zero for
// numeric bounds that contain it, otherwise the lower bound. Time axes
// always use the lower bound.
func (b Bounds) Origin() float64 {
	if !b.Time && b.Contains(0) {
		return 0
	}
	return b.Min
}
