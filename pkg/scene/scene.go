// Package scene defines the display list handed from the figure composer
// to output sinks.
//
// A [Scene] is plain data: polylines and text in data coordinates, plus a
// title and canvas settings. Sinks map data coordinates onto their canvas
// and know nothing about how the coordinates were produced.
package scene

import (
	"slices"

	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/series"
)

// Anchor is the horizontal alignment of a text relative to its position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Point is a position in data coordinates.
type Point struct {
	X, Y float64
}

// Polyline is a stroked path.
type Polyline struct {
	ID     string // stable id for saved lines, empty otherwise
	Label  string
	Points []Point
	Style  styles.LineStyle
}

// Text is a string drawn at a data position. Highlight, when set, is the
// color of a box drawn behind the text.
type Text struct {
	X, Y      float64
	Content   string
	Size      float64
	Anchor    Anchor
	Color     string
	Highlight string
}

// Title is drawn centred at the top of the canvas, outside data space.
type Title struct {
	Content string
	Size    float64
	Color   string
}

// Scene is a complete figure.
type Scene struct {
	Width      float64 // canvas width in pixels
	Height     float64 // canvas height in pixels
	Background string
	FontFamily string
	Title      *Title
	Lines      []Polyline
	Texts      []Text
}

// Zip pairs x and y into points. Extra values on either side are dropped.
func Zip(x, y []float64) []Point {
	n := min(len(x), len(y))
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{x[i], y[i]}
	}
	return pts
}

// Extent returns the data bounds covered by every line point and text
// anchor. ok is false for a scene with nothing to draw.
func (s Scene) Extent() (xb, yb series.Bounds, ok bool) {
	first := true
	add := func(x, y float64) {
		if first {
			xb, yb = series.NewBounds(x, x), series.NewBounds(y, y)
			first = false
			return
		}
		xb.Min, xb.Max = min(xb.Min, x), max(xb.Max, x)
		yb.Min, yb.Max = min(yb.Min, y), max(yb.Max, y)
	}
	for _, l := range s.Lines {
		for _, p := range l.Points {
			add(p.X, p.Y)
		}
	}
	for _, t := range s.Texts {
		add(t.X, t.Y)
	}
	return xb, yb, !first
}

// Clone returns a deep copy of s.
func (s Scene) Clone() Scene {
	out := s
	if s.Title != nil {
		t := *s.Title
		out.Title = &t
	}
	out.Lines = make([]Polyline, len(s.Lines))
	for i, l := range s.Lines {
		l.Points = slices.Clone(l.Points)
		out.Lines[i] = l
	}
	out.Texts = slices.Clone(s.Texts)
	return out
}
