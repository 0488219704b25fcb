package cli

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/figure"
	"github.com/matzehuels/squiggly/pkg/pipeline"
	"github.com/matzehuels/squiggly/pkg/scene"
	"github.com/matzehuels/squiggly/pkg/series"
	"github.com/matzehuels/squiggly/pkg/squiggle"
)

// demo is a built-in figure the render command can draw.
type demo struct {
	title string
	about string
	draw  func(f *figure.Figure, noise float64) error
}

var demos = map[string]demo{
	"sine":   {title: "Waves, roughly", about: "sine and dashed cosine, annotated peak", draw: drawSine},
	"linear": {title: "Things only go up", about: "integer x, plan against reality", draw: drawLinear},
	"dates":  {title: "Visitors per month", about: "two years on a date axis", draw: drawDates},
}

// demoNames returns the demo names in sorted order.
func demoNames() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupDemo(name string) (demo, error) {
	d, ok := demos[name]
	if !ok {
		return demo{}, errs.New(errs.ErrCodeConfiguration, "unknown demo: %q (must be one of: %s)", name, strings.Join(demoNames(), ", "))
	}
	return d, nil
}

// demoConfig holds the render flags that affect composition.
type demoConfig struct {
	title  string
	noise  float64
	legend bool
}

// compose returns the pipeline step that draws d.
func (d demo) compose(cfg demoConfig) pipeline.ComposeFunc {
	return func(ctx context.Context, f *figure.Figure) error {
		if err := d.draw(f, cfg.noise); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if cfg.title != "" {
			f.DrawTitle(cfg.title)
		}
		if cfg.legend {
			return f.DrawLegend()
		}
		return nil
	}
}

func drawSine(f *figure.Figure, noise float64) error {
	x := squiggle.Linspace(0, 10, 200)
	sin := make([]float64, len(x))
	cos := make([]float64, len(x))
	for i, v := range x {
		sin[i] = 5 * math.Sin(v)
		cos[i] = 3 * math.Cos(v)
	}

	s, err := series.New(x, sin)
	if err != nil {
		return err
	}
	c, err := series.New(x, cos)
	if err != nil {
		return err
	}

	if err := f.DrawLine(s, figure.WithLabel("5 sin(x)"), figure.WithNoise(noise)); err != nil {
		return err
	}
	if err := f.DrawLine(c, figure.WithLabel("3 cos(x)"), figure.WithNoise(noise), figure.WithDashed()); err != nil {
		return err
	}
	if err := f.DrawGrid(series.NewBounds(0, 10), series.NewBounds(-5, 5)); err != nil {
		return err
	}
	return f.DrawAnnotation(figure.Annotation{
		Text:      "the top",
		At:        scene.Point{X: 3.3, Y: 4.4},
		Curve:     &figure.Curve{From: scene.Point{X: 1.7, Y: 5.1}, To: scene.Point{X: 3.2, Y: 4.4}},
		Highlight: f.Theme().Highlight,
	})
}

func drawLinear(f *figure.Figure, noise float64) error {
	x := make([]int, 11)
	steady := make([]float64, len(x))
	hype := make([]float64, len(x))
	for i := range x {
		x[i] = i
		steady[i] = 2*float64(i) + 1
		hype[i] = 0.25 * float64(i*i)
	}

	s, err := series.Of(x, steady)
	if err != nil {
		return err
	}
	h, err := series.Of(x, hype)
	if err != nil {
		return err
	}

	if err := f.DrawLine(s, figure.WithLabel("plan"), figure.WithNoise(noise)); err != nil {
		return err
	}
	if err := f.DrawLine(h, figure.WithLabel("reality"), figure.WithNoise(noise)); err != nil {
		return err
	}
	if err := f.DrawGrid(s.XBounds(), s.YBounds().Union(h.YBounds())); err != nil {
		return err
	}
	return f.DrawAnnotation(figure.Annotation{
		Text:  "we are here",
		At:    scene.Point{X: 6.6, Y: 6},
		Curve: &figure.Curve{From: scene.Point{X: 8, Y: 16}, To: scene.Point{X: 6.5, Y: 6.5}},
	})
}

// drawDates plots two years of monthly values on a time axis.
func drawDates(f *figure.Figure, noise float64) error {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	const months = 24

	ts := make([]time.Time, months)
	visitors := make([]float64, months)
	for i := range ts {
		ts[i] = start.AddDate(0, i, 0)
		visitors[i] = 120 + 40*math.Sin(float64(i)/2) + 6*float64(i)
	}

	s, err := series.FromTimes(ts, visitors)
	if err != nil {
		return err
	}
	if err := f.DrawLine(s, figure.WithLabel("visitors"), figure.WithNoise(noise*10)); err != nil {
		return err
	}

	launch := series.Unix(start.AddDate(1, 2, 0))
	if err := f.DrawGrid(s.XBounds(), series.NewBounds(0, 300)); err != nil {
		return err
	}
	return f.DrawAnnotation(figure.Annotation{
		Text:  "launch",
		At:    scene.Point{X: launch, Y: 270},
		Curve: &figure.Curve{From: scene.Point{X: launch - 60*86400, Y: 220}, To: scene.Point{X: launch - 5*86400, Y: 265}},
	})
}
