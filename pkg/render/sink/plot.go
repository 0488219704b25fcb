package sink

import (
	"bytes"
	"image/color"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/scene"
)

// PlotFormats lists the formats [RenderPlot] can encode.
var PlotFormats = []string{"png", "jpg", "tif", "pdf", "eps", "svg"}

// pxToPt converts CSS pixels (96 dpi) to points.
const pxToPt = vg.Inch / 96

// RenderPlot draws the scene through gonum/plot and encodes it in one of
// [PlotFormats]. Document formats (pdf, eps) stay vector; image formats are
// rasterized at 96 dpi.
func RenderPlot(sc scene.Scene, format string) ([]byte, error) {
	if !slices.Contains(PlotFormats, format) {
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unsupported plot format %q", format)
	}
	if sc.Width <= 0 || sc.Height <= 0 {
		return nil, errs.New(errs.ErrCodeConfiguration, "canvas size %vx%v is empty", sc.Width, sc.Height)
	}

	p, err := buildPlot(sc)
	if err != nil {
		return nil, err
	}

	wt, err := p.WriterTo(vg.Length(sc.Width)*pxToPt, vg.Length(sc.Height)*pxToPt, format)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "create %s canvas", format)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "encode %s", format)
	}
	data := buf.Bytes()
	if format == "eps" {
		data = fixEPSHeader(data)
	}
	return data, nil
}

// fixEPSHeader repairs the "%%!PS" magic written by vgeps; readers expect
// the file to start with "%!PS".
func fixEPSHeader(data []byte) []byte {
	if bytes.HasPrefix(data, []byte("%%!PS")) {
		return data[1:]
	}
	return data
}

func buildPlot(sc scene.Scene) (*plot.Plot, error) {
	v := newViewport(sc)

	p := plot.New()
	p.HideAxes()
	p.X.Padding, p.Y.Padding = 0, 0
	p.BackgroundColor = plotColor(sc.Background, color.Transparent)

	// Axis limits cover the whole canvas so the margins match the other sinks.
	p.X.Min, p.Y.Max = v.data(0, 0)
	p.X.Max, p.Y.Min = v.data(v.width, v.height)

	if sc.Title != nil && sc.Title.Content != "" {
		p.Title.Text = sc.Title.Content
		p.Title.TextStyle.Font.Size = font.Length(sc.Title.Size) * pxToPt
		p.Title.TextStyle.Color = plotColor(sc.Title.Color, color.Black)
		p.Title.Padding = vg.Length(v.height*marginRatio) * pxToPt
	}

	for _, l := range sc.Lines {
		if len(l.Points) < 2 {
			continue
		}
		line, err := plotter.NewLine(toXYs(l.Points))
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInternal, err, "build line")
		}
		c, err := styles.ParseColor(l.Style.Color)
		if err != nil {
			c = color.NRGBA{A: 0xff}
		}
		line.LineStyle.Color = styles.WithAlpha(c, l.Style.Alpha)
		line.LineStyle.Width = vg.Length(l.Style.Width) * pxToPt
		for _, d := range l.Style.Dashes() {
			line.LineStyle.Dashes = append(line.LineStyle.Dashes, vg.Length(d)*pxToPt)
		}
		p.Add(line)
	}

	for _, t := range sc.Texts {
		if t.Highlight != "" {
			poly, err := highlightPolygon(v, t)
			if err != nil {
				return nil, err
			}
			p.Add(poly)
		}
	}
	if len(sc.Texts) > 0 {
		labels, err := textLabels(sc.Texts)
		if err != nil {
			return nil, err
		}
		p.Add(labels)
	}
	return p, nil
}

func textLabels(texts []scene.Text) (*plotter.Labels, error) {
	xys := make(plotter.XYs, len(texts))
	strs := make([]string, len(texts))
	for i, t := range texts {
		xys[i] = plotter.XY{X: t.X, Y: t.Y}
		strs[i] = t.Content
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "build labels")
	}
	for i, t := range texts {
		style := &labels.TextStyle[i]
		style.Font.Size = font.Length(t.Size) * pxToPt
		style.Color = plotColor(t.Color, color.Black)
		style.XAlign = -text.XAlignment(anchorFraction(t.Anchor))
		style.YAlign = text.YBottom
	}
	return labels, nil
}

// highlightPolygon converts a text's background box into data coordinates.
func highlightPolygon(v viewport, t scene.Text) (*plotter.Polygon, error) {
	px, py := v.point(t.X, t.Y)
	x, y, w, h := textBox(t, px, py, styles.TextWidth(t.Content, t.Size))
	x0, y0 := v.data(x, y+h)
	x1, y1 := v.data(x+w, y)
	poly, err := plotter.NewPolygon(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "build highlight")
	}
	poly.Color = plotColor(t.Highlight, color.White)
	poly.LineStyle.Width = 0
	return poly, nil
}

func toXYs(pts []scene.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}

func plotColor(c string, fallback color.Color) color.Color {
	return parseOr(c, fallback)
}
