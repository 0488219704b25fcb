package figure

import (
	"math"
	"strconv"
	"time"

	"github.com/matzehuels/squiggly/pkg/series"
)

// DateLayout formats tick labels on time axes.
const DateLayout = "Jan, 2006"

// FormatTick renders a numeric tick rounded to one decimal.
func FormatTick(v float64) string {
	r := math.Round(v*10) / 10
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// FormatTimeTick renders a Unix-seconds tick as month and year.
func FormatTimeTick(v float64, loc *time.Location) string {
	return series.Time(v, loc).Format(DateLayout)
}
