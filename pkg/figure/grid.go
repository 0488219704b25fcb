package figure

import (
	"math"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/scene"
	"github.com/matzehuels/squiggly/pkg/series"
	"github.com/matzehuels/squiggly/pkg/squiggle"
)

// DrawGrid rules hand-drawn gridlines over the given bounds and labels
// every tick.
//
// Horizontal lines sit at y ticks and vertical lines at x ticks. The line
// through the reference origin (zero when the bounds contain it, otherwise
// the lower bound; always the lower bound for time axes) uses the theme's
// axis style, the rest its minor grid style. Each line also gets a short
// axis-styled tick mark where it crosses the other reference axis.
func (f *Figure) DrawGrid(xb, yb series.Bounds) error {
	if err := validateBounds("x", xb); err != nil {
		return err
	}
	if err := validateBounds("y", yb); err != nil {
		return err
	}

	g := gridGeometry{
		xb: xb, yb: yb,
		xorigin: xb.Origin(), yorigin: yb.Origin(),
		delx: xb.Range() * AxisDxPerc / 100,
		dely: yb.Range() * AxisDxPerc / 100,
	}

	for _, dir := range []squiggle.Dir{squiggle.DirX, squiggle.DirY} {
		lines, err := squiggle.Gridlines(xb, yb, squiggle.DefaultGridOptions(dir))
		if err != nil {
			return err
		}
		for _, gl := range lines {
			if err := f.drawGridline(g, gl); err != nil {
				return err
			}
		}
	}

	f.gridXB, f.gridYB = &xb, &yb
	f.logger.Debug("draw grid", "x", [2]float64{xb.Min, xb.Max}, "y", [2]float64{yb.Min, yb.Max}, "time", xb.Time)
	return nil
}

type gridGeometry struct {
	xb, yb           series.Bounds
	xorigin, yorigin float64
	delx, dely       float64
}

// axes returns, for a gridline direction, the cross-axis origin and range
// and the swept-axis origin and tick-mark half-width.
func (g gridGeometry) axes(dir squiggle.Dir) (crossOrigin, crossRange, sweptOrigin, sweptDelta float64) {
	if dir == squiggle.DirX {
		return g.yorigin, g.yb.Range(), g.xorigin, g.delx
	}
	return g.xorigin, g.xb.Range(), g.yorigin, g.dely
}

func (f *Figure) drawGridline(g gridGeometry, gl squiggle.Gridline) error {
	crossOrigin, crossRange, sweptOrigin, sweptDelta := g.axes(gl.Dir)

	opts := squiggle.DefaultOptions()
	opts.NoiseStrength = crossRange * f.gridNoisePerc / 100
	swept, cross, err := squiggle.Squigglify(gl.Swept, gl.Cross, opts, f.src)
	if err != nil {
		return err
	}

	style := f.theme.MinorGrid
	if math.Abs(gl.Tick-crossOrigin) <= 1e-9*crossRange {
		style = f.theme.Axis
	}
	f.scene.Lines = append(f.scene.Lines, scene.Polyline{
		Points: orient(gl.Dir, swept, cross),
		Style:  style,
	})

	var ms, mc []float64
	for i, v := range swept {
		if sweptOrigin-sweptDelta <= v && v <= sweptOrigin+sweptDelta {
			ms, mc = append(ms, v), append(mc, cross[i])
		}
	}
	if len(ms) > 1 {
		f.scene.Lines = append(f.scene.Lines, scene.Polyline{
			Points: orient(gl.Dir, ms, mc),
			Style:  f.theme.Axis,
		})
	}

	f.drawTickLabel(g, gl)
	return nil
}

func (f *Figure) drawTickLabel(g gridGeometry, gl squiggle.Gridline) {
	if gl.Dir == squiggle.DirX {
		f.addText(g.xb.Min-3*g.delx, gl.Tick, FormatTick(gl.Tick), scene.AnchorMiddle, "")
		return
	}
	label := FormatTick(gl.Tick)
	if g.xb.Time {
		label = FormatTimeTick(gl.Tick, f.loc)
	}
	f.addText(gl.Tick, g.yorigin-5*g.dely, label, scene.AnchorMiddle, "")
}

// orient maps swept/cross arrays to x/y points.
func orient(dir squiggle.Dir, swept, cross []float64) []scene.Point {
	if dir == squiggle.DirX {
		return scene.Zip(swept, cross)
	}
	return scene.Zip(cross, swept)
}

func validateBounds(axis string, b series.Bounds) error {
	if err := errs.ValidateFinite(axis+" bounds", []float64{b.Min, b.Max}); err != nil {
		return err
	}
	if b.Range() <= 0 {
		return errs.New(errs.ErrCodeNumericDegeneracy, "%s bounds have no range: [%v, %v]", axis, b.Min, b.Max)
	}
	return nil
}
