package squiggle

import (
	"slices"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/series"
)

// Dir is the swept axis of a set of gridlines.
type Dir byte

const (
	// DirX sweeps along x: horizontal lines at y ticks.
	DirX Dir = 'x'
	// DirY sweeps along y: vertical lines at x ticks.
	DirY Dir = 'y'
)

func (d Dir) String() string { return string(rune(d)) }

// ParseDir converts "x" or "y" to a Dir.
func ParseDir(s string) (Dir, error) {
	if len(s) == 1 {
		if d := Dir(s[0]); d == DirX || d == DirY {
			return d, nil
		}
	}
	return 0, errs.New(errs.ErrCodeConfiguration, "invalid grid direction %q: must be 'x' or 'y'", s)
}

// Defaults for [GridOptions].
const (
	DefaultNTicks     = 5
	DefaultExtendPerc = 3.0
)

// GridOptions control gridline generation.
type GridOptions struct {
	NTicks     int
	ExtendPerc float64 // padding on each end of the swept axis, percent of its range
	Dir        Dir
	DxPerc     float64 // sample step, percent of the extended swept range
}

// DefaultGridOptions returns the default options for direction d.
func DefaultGridOptions(d Dir) GridOptions {
	return GridOptions{
		NTicks:     DefaultNTicks,
		ExtendPerc: DefaultExtendPerc,
		Dir:        d,
		DxPerc:     DefaultDxPerc,
	}
}

// Validate checks the options.
func (o GridOptions) Validate() error {
	if o.Dir != DirX && o.Dir != DirY {
		return errs.New(errs.ErrCodeConfiguration, "invalid grid direction %q: must be 'x' or 'y'", rune(o.Dir))
	}
	if o.NTicks < 1 {
		return errs.New(errs.ErrCodeConfiguration, "nticks must be at least 1, got %d", o.NTicks)
	}
	if err := errs.ValidateNonNegative("extend_perc", o.ExtendPerc); err != nil {
		return err
	}
	return errs.ValidatePositive("dx_perc", o.DxPerc)
}

// Gridline is one ruled line. Swept holds uniform coordinates along the
// swept axis; Cross is constant at Tick.
type Gridline struct {
	Swept []float64
	Cross []float64
	Tick  float64
	Dir   Dir
}

// XY returns the line as x and y arrays.
func (g Gridline) XY() (x, y []float64) {
	if g.Dir == DirX {
		return g.Swept, g.Cross
	}
	return g.Cross, g.Swept
}

// Gridlines builds one gridline per tick. Ticks are spaced evenly over the
// cross axis bounds; each line spans the swept axis bounds extended by
// ExtendPerc on both sides.
func Gridlines(xb, yb series.Bounds, opts GridOptions) ([]Gridline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	swept, cross := xb, yb
	if opts.Dir == DirY {
		swept, cross = yb, xb
	}

	n, err := sampleCount(opts.DxPerc)
	if err != nil {
		return nil, err
	}
	ext := swept.Extend(opts.ExtendPerc)
	axis := Linspace(ext.Min, ext.Max, n)

	ticks := Linspace(cross.Min, cross.Max, opts.NTicks)
	lines := make([]Gridline, len(ticks))
	for i, t := range ticks {
		lines[i] = Gridline{
			Swept: slices.Clone(axis),
			Cross: Constant(t, n),
			Tick:  t,
			Dir:   opts.Dir,
		}
	}
	return lines, nil
}
