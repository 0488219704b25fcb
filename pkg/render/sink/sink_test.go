package sink

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/scene"
)

func testScene() scene.Scene {
	return scene.Scene{
		Width:      400,
		Height:     200,
		Background: "white",
		FontFamily: "xkcd Script",
		Title:      &scene.Title{Content: "Sales & <Costs>", Size: 30, Color: "black"},
		Lines: []scene.Polyline{
			{ID: "abc", Label: "sales", Points: scene.Zip([]float64{0, 5, 10}, []float64{0, 4, 2}), Style: styles.LineStyle{Color: "#1f77b4", Width: 3, Alpha: 0.5}},
			{Points: scene.Zip([]float64{0, 10}, []float64{0, 0}), Style: styles.MinorGrid()},
		},
		Texts: []scene.Text{
			{X: 5, Y: 4, Content: "peak", Size: 20, Color: "black", Highlight: "yellow"},
			{X: 0, Y: -0.5, Content: "0.0", Size: 20, Color: "black", Anchor: scene.AnchorMiddle},
		},
	}
}

func TestViewport(t *testing.T) {
	sc := testScene()
	v := newViewport(sc)

	near := func(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

	x0, y0 := v.point(0, 4)
	x1, y1 := v.point(10, -0.5)
	if !near(x0, v.left) || !near(x1, v.width-v.right) {
		t.Errorf("x maps to [%v, %v], want [%v, %v]", x0, x1, v.left, v.width-v.right)
	}
	if !near(y0, v.top) || !near(y1, v.height-v.bottom) {
		t.Errorf("y maps to [%v, %v], want [%v, %v]", y0, y1, v.top, v.height-v.bottom)
	}
	if v.top <= v.bottom {
		t.Error("title should widen the top margin")
	}

	dx, dy := v.data(v.point(3, 1))
	if !near(dx, 3) || !near(dy, 1) {
		t.Errorf("data(point(3, 1)) = (%v, %v)", dx, dy)
	}
}

func TestViewportEmpty(t *testing.T) {
	v := newViewport(scene.Scene{Width: 100, Height: 100})
	if v.xb.Range() <= 0 || v.yb.Range() <= 0 {
		t.Errorf("empty scene should get a unit extent, got %+v %+v", v.xb, v.yb)
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testScene(), WithLineIDs()))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("output is not a complete svg document")
	}
	if n := strings.Count(svg, "<path"); n != 2 {
		t.Errorf("svg has %d paths, want 2", n)
	}
	for _, want := range []string{
		`id="line-abc"`,
		`stroke="#1f77b4"`,
		`stroke-dasharray="3.70 1.60"`,
		`fill="#ffff00"`,
		`text-anchor="middle"`,
		`Sales &amp; &lt;Costs&gt;`,
		`xkcd Script`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Count(svg, "<text") != 3 {
		t.Errorf("svg has %d texts, want 3", strings.Count(svg, "<text"))
	}
}

func TestRenderSVGFontOverride(t *testing.T) {
	svg := string(RenderSVG(testScene(), WithFontFamily("Humor Sans")))
	if !strings.Contains(svg, `font-family="Humor Sans"`) {
		t.Error("WithFontFamily() should override the scene font")
	}
	if strings.Contains(svg, `id="line-`) {
		t.Error("line ids should only be written with WithLineIDs()")
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(testScene(), WithScale(2))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 400 {
		t.Errorf("image is %dx%d, want 800x400", b.Dx(), b.Dy())
	}
	if r, g, b, _ := img.At(0, 0).RGBA(); r != 0xffff || g != 0xffff || b != 0xffff {
		t.Errorf("corner pixel = %v, want white background", img.At(0, 0))
	}
}

func TestRenderPNGErrors(t *testing.T) {
	if _, err := RenderPNG(testScene(), WithScale(0)); !errs.Is(err, errs.ErrCodeConfiguration) {
		t.Errorf("RenderPNG(scale 0) error = %v, want CONFIGURATION", err)
	}
	if _, err := RenderPNG(scene.Scene{}); !errs.Is(err, errs.ErrCodeConfiguration) {
		t.Errorf("RenderPNG(empty canvas) error = %v, want CONFIGURATION", err)
	}
}

func TestRenderPlotEPSHeader(t *testing.T) {
	data, err := RenderPlot(testScene(), "eps")
	if err != nil {
		t.Fatalf("RenderPlot(eps) error: %v", err)
	}
	first, _, _ := bytes.Cut(data, []byte("\n"))
	if got := string(first); got != "%!PS-Adobe-3.0 EPSF-3.0" {
		t.Errorf("first line = %q, want %q", got, "%!PS-Adobe-3.0 EPSF-3.0")
	}
}

func TestFixEPSHeader(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"%%!PS-Adobe-3.0 EPSF-3.0\n", "%!PS-Adobe-3.0 EPSF-3.0\n"},
		{"%!PS-Adobe-3.0 EPSF-3.0\n", "%!PS-Adobe-3.0 EPSF-3.0\n"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := string(fixEPSHeader([]byte(tt.in))); got != tt.want {
			t.Errorf("fixEPSHeader(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderPlot(t *testing.T) {
	tests := []struct {
		format string
		magic  []byte
	}{
		{"pdf", []byte("%PDF")},
		{"png", []byte("\x89PNG")},
		{"eps", []byte("%!PS")},
		{"jpg", []byte("\xff\xd8")},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			data, err := RenderPlot(testScene(), tt.format)
			if err != nil {
				t.Fatalf("RenderPlot(%s) error: %v", tt.format, err)
			}
			if !bytes.HasPrefix(data, tt.magic) {
				t.Errorf("RenderPlot(%s) starts with %q, want %q", tt.format, data[:min(8, len(data))], tt.magic)
			}
		})
	}
}

func TestRenderPlotSVG(t *testing.T) {
	data, err := RenderPlot(testScene(), "svg")
	if err != nil {
		t.Fatalf("RenderPlot(svg) error: %v", err)
	}
	if !bytes.Contains(data, []byte("<svg")) {
		t.Error("RenderPlot(svg) output has no svg element")
	}
}

func TestRenderPlotErrors(t *testing.T) {
	if _, err := RenderPlot(testScene(), "gif"); !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("RenderPlot(gif) error = %v, want INVALID_FORMAT", err)
	}
	if _, err := RenderPlot(scene.Scene{}, "pdf"); !errs.Is(err, errs.ErrCodeConfiguration) {
		t.Errorf("RenderPlot(empty canvas) error = %v, want CONFIGURATION", err)
	}
}

func TestTextBox(t *testing.T) {
	txt := scene.Text{Size: 20, Anchor: scene.AnchorMiddle}
	x, _, w, h := textBox(txt, 100, 50, 40)
	if x != 100-20-highlightPad || w != 40+2*highlightPad || h <= 20 {
		t.Errorf("textBox() = x %v w %v h %v", x, w, h)
	}
}
