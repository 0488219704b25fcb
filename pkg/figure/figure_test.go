package figure

import (
	"math"
	"strings"
	"testing"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/render/styles"
	"github.com/matzehuels/squiggly/pkg/series"
)

func sine(t *testing.T) series.Series {
	t.Helper()
	x := make([]float64, 100)
	y := make([]float64, 100)
	for i := range x {
		x[i] = float64(i) / 10
		y[i] = math.Sin(x[i])
	}
	s, err := series.New(x, y)
	if err != nil {
		t.Fatalf("series.New() error: %v", err)
	}
	return s
}

func newFigure(t *testing.T, opts ...Option) *Figure {
	t.Helper()
	f, err := New(append([]Option{WithSeed(1)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return f
}

func TestNew(t *testing.T) {
	f := newFigure(t)
	sc := f.Scene()
	if sc.Width != DefaultWidth || sc.Height != DefaultHeight {
		t.Errorf("canvas = %vx%v, want %vx%v", sc.Width, sc.Height, DefaultWidth, DefaultHeight)
	}
	if sc.FontFamily != styles.DefaultTheme().FontFamily || sc.Background != "white" {
		t.Errorf("scene = %+v", sc)
	}
}

func TestNewErrors(t *testing.T) {
	bad := styles.DefaultTheme()
	bad.TitleSize = 0

	tests := []struct {
		name string
		opts []Option
		code errs.Code
	}{
		{"zero width", []Option{WithSize(0, 100)}, errs.ErrCodeConfiguration},
		{"negative grid noise", []Option{WithGridNoise(-1)}, errs.ErrCodeConfiguration},
		{"bad theme", []Option{WithTheme(bad)}, errs.ErrCodeInvalidTheme},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.opts...)
			if !errs.Is(err, tt.code) || f != nil {
				t.Errorf("New() = %v, %v; want nil, %s", f, err, tt.code)
			}
		})
	}
}

func TestDrawLine(t *testing.T) {
	f := newFigure(t)
	if err := f.DrawLine(sine(t), WithLabel("sin")); err != nil {
		t.Fatalf("DrawLine() error: %v", err)
	}
	if err := f.DrawLine(sine(t), WithColor("#ff0000"), WithWidth(1), WithAlpha(0.8)); err != nil {
		t.Fatalf("DrawLine() error: %v", err)
	}

	sc := f.Scene()
	if len(sc.Lines) != 2 {
		t.Fatalf("scene has %d lines, want 2", len(sc.Lines))
	}
	first, second := sc.Lines[0], sc.Lines[1]
	if first.Label != "sin" || first.ID == "" {
		t.Errorf("first line = %q id %q", first.Label, first.ID)
	}
	if first.Style.Color != styles.Palette[0] || first.Style.Width != DefaultLineWidth || first.Style.Alpha != DefaultLineAlpha {
		t.Errorf("first line style = %+v", first.Style)
	}
	if second.Style.Color != "#ff0000" || second.Style.Width != 1 || second.Style.Alpha != 0.8 {
		t.Errorf("second line style = %+v", second.Style)
	}
	if first.ID == second.ID {
		t.Error("saved lines should have distinct ids")
	}
	if got := first.Points[0].X; got != 0 {
		t.Errorf("line starts at x=%v, want 0", got)
	}
	if got := first.Points[len(first.Points)-1].X; math.Abs(got-9.9) > 1e-12 {
		t.Errorf("line ends at x=%v, want 9.9", got)
	}
}

func TestDrawLineStableIDs(t *testing.T) {
	a, b := newFigure(t), newFigure(t)
	_ = a.DrawLine(sine(t), WithLabel("x"))
	_ = b.DrawLine(sine(t), WithLabel("x"))
	if a.Scene().Lines[0].ID != b.Scene().Lines[0].ID {
		t.Error("same position and label should give the same id")
	}
}

func TestDrawLineUnsaved(t *testing.T) {
	f := newFigure(t)
	if err := f.DrawLine(sine(t), Unsaved()); err != nil {
		t.Fatalf("DrawLine() error: %v", err)
	}
	if id := f.Scene().Lines[0].ID; id != "" {
		t.Errorf("unsaved line id = %q, want empty", id)
	}
	if len(f.saved) != 0 {
		t.Error("unsaved line should not be remembered")
	}
}

func TestDrawLineSeeded(t *testing.T) {
	a, b := newFigure(t), newFigure(t)
	_ = a.DrawLine(sine(t))
	_ = b.DrawLine(sine(t))
	pa, pb := a.Scene().Lines[0].Points, b.Scene().Lines[0].Points
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("point %d differs between equally seeded figures", i)
		}
	}
}

func TestDrawLineErrors(t *testing.T) {
	short := series.Series{X: []float64{0, 1, 2}, Y: []float64{0, 1, 2}}

	tests := []struct {
		name string
		s    series.Series
		opts []LineOption
		code errs.Code
	}{
		{"three points", short, nil, errs.ErrCodeShapeValidation},
		{"bad color", sine(t), []LineOption{WithColor("nope")}, errs.ErrCodeConfiguration},
		{"zero width", sine(t), []LineOption{WithWidth(0)}, errs.ErrCodeConfiguration},
		{"alpha", sine(t), []LineOption{WithAlpha(1.5)}, errs.ErrCodeConfiguration},
		{"autocorr", sine(t), []LineOption{WithAutocorr(0)}, errs.ErrCodeConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFigure(t)
			err := f.DrawLine(tt.s, tt.opts...)
			if !errs.Is(err, tt.code) {
				t.Errorf("DrawLine() error = %v, want %s", err, tt.code)
			}
			if len(f.Scene().Lines) != 0 {
				t.Error("failed DrawLine() should not add a line")
			}
		})
	}
}

func TestDrawTitle(t *testing.T) {
	f := newFigure(t)
	f.DrawTitle("first")
	f.DrawTitle("Hand drawn")
	title := f.Scene().Title
	if title == nil || title.Content != "Hand drawn" || title.Size != 30 {
		t.Errorf("title = %+v", title)
	}
}

func TestFormatTick(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{2.5, "2.5"},
		{-5, "-5.0"},
		{0, "0.0"},
		{-0.04, "0.0"},
		{1.25, "1.3"},
		{1e-17, "0.0"},
	}
	for _, tt := range tests {
		if got := FormatTick(tt.in); got != tt.want {
			t.Errorf("FormatTick(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSceneIsCopy(t *testing.T) {
	f := newFigure(t)
	_ = f.DrawLine(sine(t))
	sc := f.Scene()
	sc.Lines[0].Points[0].Y = 1e9
	if f.Scene().Lines[0].Points[0].Y == 1e9 {
		t.Error("Scene() should return a copy")
	}
	if !strings.HasPrefix(f.Scene().FontFamily, "xkcd") {
		t.Errorf("font family = %q", f.Scene().FontFamily)
	}
}
