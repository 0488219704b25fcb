package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/squiggly/pkg/fonts"
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/scene"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	fontFamily string
	lineIDs    bool
}

// WithFontFamily overrides the scene's font family.
func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// WithLineIDs tags saved lines with id attributes.
func WithLineIDs() SVGOption { return func(r *svgRenderer) { r.lineIDs = true } }

func RenderSVG(sc scene.Scene, opts ...SVGOption) []byte {
	r := newSVGRenderer(sc, opts...)
	v := newViewport(sc)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		sc.Width, sc.Height, sc.Width, sc.Height)
	if sc.Background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", cssColor(sc.Background))
	}

	buf.WriteString(`  <g fill="none" stroke-linecap="round" stroke-linejoin="round">` + "\n")
	for _, l := range sc.Lines {
		r.renderLine(&buf, v, l)
	}
	buf.WriteString("  </g>\n")

	for _, t := range sc.Texts {
		r.renderText(&buf, v, t)
	}
	if sc.Title != nil && sc.Title.Content != "" {
		r.renderTitle(&buf, v, *sc.Title)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(sc scene.Scene, opts ...SVGOption) svgRenderer {
	r := svgRenderer{fontFamily: sc.FontFamily}
	for _, opt := range opts {
		opt(&r)
	}
	if r.fontFamily == "" || r.fontFamily == fonts.FontFamily {
		r.fontFamily = fonts.FallbackFontFamily
	}
	return r
}

func (r *svgRenderer) renderLine(buf *bytes.Buffer, v viewport, l scene.Polyline) {
	if len(l.Points) == 0 {
		return
	}
	buf.WriteString(`    <path`)
	if r.lineIDs && l.ID != "" {
		fmt.Fprintf(buf, ` id="line-%s"`, styles.EscapeXML(l.ID))
	}
	buf.WriteString(` d="`)
	for i, p := range l.Points {
		x, y := v.point(p.X, p.Y)
		cmd := 'L'
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(buf, "%c%.2f %.2f", cmd, x, y)
	}
	fmt.Fprintf(buf, `" stroke="%s" stroke-width="%.2f" stroke-opacity="%.2f"`,
		cssColor(l.Style.Color), l.Style.Width, l.Style.Alpha)
	if d := l.Style.Dashes(); d != nil {
		fmt.Fprintf(buf, ` stroke-dasharray="%s"`, joinFloats(d))
	}
	buf.WriteString("/>\n")
}

func (r *svgRenderer) renderText(buf *bytes.Buffer, v viewport, t scene.Text) {
	px, py := v.point(t.X, t.Y)
	if t.Highlight != "" {
		x, y, w, h := textBox(t, px, py, styles.TextWidth(t.Content, t.Size))
		fmt.Fprintf(buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			x, y, w, h, cssColor(t.Highlight))
	}
	fmt.Fprintf(buf, `  <text x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="%s">%s</text>`+"\n",
		px, py, styles.EscapeXML(r.fontFamily), t.Size, cssColor(t.Color), svgAnchor(t.Anchor), styles.EscapeXML(t.Content))
}

func (r *svgRenderer) renderTitle(buf *bytes.Buffer, v viewport, t scene.Title) {
	x, y := v.titleBaseline(t.Size)
	fmt.Fprintf(buf, `  <text class="title" x="%.2f" y="%.2f" font-family="%s" font-size="%.1f" fill="%s" text-anchor="middle">%s</text>`+"\n",
		x, y, styles.EscapeXML(r.fontFamily), t.Size, cssColor(t.Color), styles.EscapeXML(t.Content))
}

func svgAnchor(a scene.Anchor) string {
	switch a {
	case scene.AnchorMiddle:
		return "middle"
	case scene.AnchorEnd:
		return "end"
	}
	return "start"
}

func joinFloats(vs []float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%.2f", v)
	}
	return strings.Join(parts, " ")
}
