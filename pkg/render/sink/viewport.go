package sink

import (
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/scene"
	"github.com/matzehuels/squiggly/pkg/series"
)

const (
	marginRatio     = 0.04
	titleGapRatio   = 2.0
	highlightPad    = 4.0
	descenderRatio  = 0.25
	emptyExtentSpan = 1.0
)

// viewport maps data coordinates to canvas pixels with y pointing down.
type viewport struct {
	width, height            float64
	left, right, top, bottom float64
	xb, yb                   series.Bounds
}

func newViewport(sc scene.Scene) viewport {
	xb, yb, ok := sc.Extent()
	if !ok {
		xb, yb = series.NewBounds(0, emptyExtentSpan), series.NewBounds(0, emptyExtentSpan)
	}
	xb, yb = widen(xb), widen(yb)

	label := 0.0
	for _, t := range sc.Texts {
		label = max(label, t.Size)
	}
	side := sc.Width*marginRatio + 2*label
	v := viewport{
		width:  sc.Width,
		height: sc.Height,
		left:   side,
		right:  side,
		top:    sc.Height*marginRatio + label,
		bottom: sc.Height*marginRatio + label,
		xb:     xb,
		yb:     yb,
	}
	if sc.Title != nil && sc.Title.Content != "" {
		v.top += sc.Title.Size * titleGapRatio
	}
	return v
}

func widen(b series.Bounds) series.Bounds {
	if b.Range() > 0 {
		return b
	}
	return series.Bounds{Min: b.Min - emptyExtentSpan/2, Max: b.Max + emptyExtentSpan/2, Time: b.Time}
}

// sx and sy are pixels per data unit.
func (v viewport) sx() float64 { return (v.width - v.left - v.right) / v.xb.Range() }
func (v viewport) sy() float64 { return (v.height - v.top - v.bottom) / v.yb.Range() }

// point maps a data position to pixels.
func (v viewport) point(x, y float64) (float64, float64) {
	return v.left + (x-v.xb.Min)*v.sx(), v.top + (v.yb.Max-y)*v.sy()
}

// data maps a pixel position back to data coordinates.
func (v viewport) data(px, py float64) (float64, float64) {
	return v.xb.Min + (px-v.left)/v.sx(), v.yb.Max - (py-v.top)/v.sy()
}

// titleBaseline returns the pixel position of the title baseline.
func (v viewport) titleBaseline(size float64) (float64, float64) {
	return v.width / 2, v.height*marginRatio + size
}

// textBox returns the pixel rectangle behind a text whose baseline anchor
// sits at (px, py), given its rendered width.
func textBox(t scene.Text, px, py, width float64) (x, y, w, h float64) {
	switch t.Anchor {
	case scene.AnchorMiddle:
		px -= width / 2
	case scene.AnchorEnd:
		px -= width
	}
	ascent := styles.TextAscent(t.Size)
	return px - highlightPad, py - ascent - highlightPad, width + 2*highlightPad, ascent + t.Size*descenderRatio + 2*highlightPad
}

// anchorFraction is the share of the text width left of the anchor point.
func anchorFraction(a scene.Anchor) float64 {
	switch a {
	case scene.AnchorMiddle:
		return 0.5
	case scene.AnchorEnd:
		return 1
	}
	return 0
}

// cssColor normalizes a color for output, passing unknown values through.
func cssColor(c string) string {
	if hex, err := styles.Hex(c); err == nil {
		return hex
	}
	return c
}
