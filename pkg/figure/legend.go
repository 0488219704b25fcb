package figure

import (
	"github.com/matzehuels/squiggly/pkg/scene"
	"github.com/matzehuels/squiggly/pkg/series"
	"github.com/matzehuels/squiggly/pkg/squiggle"
)

const legendSwatchSamples = 5

// DrawLegend lists every saved line as a short swatch in its color followed
// by its label, stacked down from the top-left corner of the grid. Without
// a grid the saved lines' own extent is used. Drawing a legend with no
// saved lines is a no-op.
func (f *Figure) DrawLegend() error {
	if len(f.saved) == 0 {
		return nil
	}
	xb, yb := f.legendBounds()
	delx := xb.Range() * AxisDxPerc / 100
	dely := yb.Range() * AxisDxPerc / 100

	opts := squiggle.DefaultOptions()
	opts.NoiseStrength = yb.Range() * f.gridNoisePerc / 100

	// Swatches are appended to scene.Lines, so snapshot the saved set first.
	saved := make([]scene.Polyline, len(f.saved))
	for i, idx := range f.saved {
		saved[i] = f.scene.Lines[idx]
	}

	for i, line := range saved {
		y := yb.Max - float64(2+3*i)*dely
		x := squiggle.Linspace(xb.Min+2*delx, xb.Min+6*delx, legendSwatchSamples)
		sx, sy, err := squiggle.Squigglify(x, squiggle.Constant(y, len(x)), opts, f.src)
		if err != nil {
			return err
		}

		style := line.Style
		style.Alpha = 1
		f.scene.Lines = append(f.scene.Lines, scene.Polyline{
			Points: scene.Zip(sx, sy),
			Style:  style,
		})
		f.addText(x[len(x)-1]+delx, y, line.Label, scene.AnchorStart, "")
	}

	f.logger.Debug("draw legend", "entries", len(saved))
	return nil
}

func (f *Figure) legendBounds() (series.Bounds, series.Bounds) {
	if f.gridXB != nil {
		return *f.gridXB, *f.gridYB
	}
	var xb, yb series.Bounds
	for i, idx := range f.saved {
		pts := f.scene.Lines[idx].Points
		lx, ly := pointBounds(pts)
		if i == 0 {
			xb, yb = lx, ly
			continue
		}
		xb, yb = xb.Union(lx), yb.Union(ly)
	}
	return xb, yb
}

func pointBounds(pts []scene.Point) (series.Bounds, series.Bounds) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return series.BoundsOf(xs), series.BoundsOf(ys)
}
