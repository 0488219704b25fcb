package series

import (
	"math"
	"time"
)

// Unix encodes t as fractional Unix seconds, the linear axis used for
// timestamp-valued series.
func Unix(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

// Time decodes fractional Unix seconds back into a time in loc.
// A nil loc means UTC.
func Time(v float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).In(loc)
}
