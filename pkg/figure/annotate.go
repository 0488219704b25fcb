package figure

import (
	"math"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/scene"
	"github.com/matzehuels/squiggly/pkg/series"
	"github.com/matzehuels/squiggly/pkg/squiggle"
)

// Annotation curve settings.
const (
	annotationSamples = 20
	annotationNoise   = 0.1
	annotationWidth   = 1.0
)

// Curve is a connector drawn from From toward To.
type Curve struct {
	From, To scene.Point
}

// Annotation is free text at At, optionally with a connecting curve and a
// highlight box behind the text.
type Annotation struct {
	Text      string
	At        scene.Point
	Curve     *Curve
	Highlight string // background color, empty for none
}

// DrawAnnotation adds a to the figure. The curve rises (or falls)
// geometrically so it bends like a hand-drawn pointer.
func (f *Figure) DrawAnnotation(a Annotation) error {
	if a.Highlight != "" {
		if _, err := styles.ParseColor(a.Highlight); err != nil {
			return errs.Wrap(errs.ErrCodeConfiguration, err, "annotation highlight")
		}
	}
	if a.Curve != nil {
		s, err := curveSeries(*a.Curve)
		if err != nil {
			return err
		}
		err = f.DrawLine(s,
			Unsaved(),
			WithNoise(annotationNoise),
			WithColor(f.theme.TextColor),
			WithWidth(annotationWidth),
			WithAlpha(1),
		)
		if err != nil {
			return err
		}
	}

	f.addText(a.At.X, a.At.Y, a.Text, scene.AnchorStart, a.Highlight)
	f.logger.Debug("draw annotation", "text", a.Text, "curve", a.Curve != nil)
	return nil
}

// curveSeries samples x linearly and y geometrically between the ends.
func curveSeries(c Curve) (series.Series, error) {
	if c.From.X == c.To.X {
		return series.Series{}, errs.New(errs.ErrCodeNumericDegeneracy, "annotation curve has no x extent at %v", c.From.X)
	}
	x := squiggle.Linspace(c.From.X, c.To.X, annotationSamples)
	d := math.Abs(c.To.Y - c.From.Y)
	sign := 1.0
	if c.To.Y < c.From.Y {
		sign = -1
	}
	g := squiggle.Geomspace(1, d+1, annotationSamples)
	y := make([]float64, annotationSamples)
	for i, v := range g {
		y[i] = c.From.Y + sign*(v-1)
	}
	return series.New(x, y)
}
