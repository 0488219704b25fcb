package sink

import (
	"bytes"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/fonts"
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/scene"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
	faces map[float64]font.Face
}

// WithScale sets the PNG scale factor (default 1.0).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG rasterizes the scene with the Go Regular font.
func RenderPNG(sc scene.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0, faces: map[float64]font.Face{}}
	for _, opt := range opts {
		opt(&r)
	}
	defer r.close()

	if r.scale <= 0 {
		return nil, errs.New(errs.ErrCodeConfiguration, "png scale must be positive, got %v", r.scale)
	}
	w, h := int(sc.Width*r.scale+0.5), int(sc.Height*r.scale+0.5)
	if w <= 0 || h <= 0 {
		return nil, errs.New(errs.ErrCodeConfiguration, "canvas size %vx%v is empty", sc.Width, sc.Height)
	}

	v := newViewport(sc)
	dc := gg.NewContext(w, h)

	if sc.Background != "" {
		dc.SetColor(parseOr(sc.Background, color.White))
		dc.Clear()
	}
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for _, l := range sc.Lines {
		r.drawLine(dc, v, l)
	}
	for _, t := range sc.Texts {
		if err := r.drawText(dc, v, t); err != nil {
			return nil, err
		}
	}
	if sc.Title != nil && sc.Title.Content != "" {
		if err := r.drawTitle(dc, v, *sc.Title); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// point maps data coordinates to scaled canvas pixels.
func (r *pngRenderer) point(v viewport, x, y float64) (float64, float64) {
	px, py := v.point(x, y)
	return px * r.scale, py * r.scale
}

func (r *pngRenderer) drawLine(dc *gg.Context, v viewport, l scene.Polyline) {
	if len(l.Points) < 2 {
		return
	}
	dc.NewSubPath()
	for i, p := range l.Points {
		x, y := r.point(v, p.X, p.Y)
		if i == 0 {
			dc.MoveTo(x, y)
			continue
		}
		dc.LineTo(x, y)
	}
	c, err := styles.ParseColor(l.Style.Color)
	if err != nil {
		c = color.NRGBA{A: 0xff}
	}
	dc.SetColor(styles.WithAlpha(c, l.Style.Alpha))
	dc.SetLineWidth(l.Style.Width * r.scale)
	dashes := l.Style.Dashes()
	for i := range dashes {
		dashes[i] *= r.scale
	}
	dc.SetDash(dashes...)
	dc.Stroke()
}

func (r *pngRenderer) drawText(dc *gg.Context, v viewport, t scene.Text) error {
	if err := r.useFace(dc, t.Size*r.scale); err != nil {
		return err
	}
	px, py := r.point(v, t.X, t.Y)
	if t.Highlight != "" {
		tw, _ := dc.MeasureString(t.Content)
		scaled := t
		scaled.Size *= r.scale
		x, y, w, h := textBox(scaled, px, py, tw)
		dc.SetColor(parseOr(t.Highlight, color.White))
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
	}
	dc.SetColor(parseOr(t.Color, color.Black))
	dc.DrawStringAnchored(t.Content, px, py, anchorFraction(t.Anchor), 0)
	return nil
}

func (r *pngRenderer) drawTitle(dc *gg.Context, v viewport, t scene.Title) error {
	if err := r.useFace(dc, t.Size*r.scale); err != nil {
		return err
	}
	x, y := v.titleBaseline(t.Size)
	x, y = x*r.scale, y*r.scale
	dc.SetColor(parseOr(t.Color, color.Black))
	dc.DrawStringAnchored(t.Content, x, y, 0.5, 0)
	return nil
}

// useFace sets a cached Go Regular face of the given size.
func (r *pngRenderer) useFace(dc *gg.Context, size float64) error {
	face, ok := r.faces[size]
	if !ok {
		var err error
		face, err = fonts.Face(size)
		if err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "load font")
		}
		r.faces[size] = face
	}
	dc.SetFontFace(face)
	return nil
}

func (r *pngRenderer) close() {
	for _, f := range r.faces {
		_ = f.Close()
	}
}

// parseOr parses c, falling back when it is empty or invalid.
func parseOr(c string, fallback color.Color) color.Color {
	if c == "" {
		return fallback
	}
	parsed, err := styles.ParseColor(c)
	if err != nil {
		return fallback
	}
	return parsed
}
