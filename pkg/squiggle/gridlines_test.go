package squiggle

import (
	"testing"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/series"
)

func TestGridlines(t *testing.T) {
	xb := series.NewBounds(0, 10)
	yb := series.NewBounds(-5, 5)

	tests := []struct {
		name             string
		dir              Dir
		wantTicks        []float64
		sweptLo, sweptHi float64
	}{
		{"horizontal", DirX, []float64{-5, -2.5, 0, 2.5, 5}, -0.3, 10.3},
		{"vertical", DirY, []float64{0, 2.5, 5, 7.5, 10}, -5.3, 5.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Gridlines(xb, yb, DefaultGridOptions(tt.dir))
			if err != nil {
				t.Fatalf("Gridlines() error: %v", err)
			}
			if len(lines) != len(tt.wantTicks) {
				t.Fatalf("Gridlines() returned %d lines, want %d", len(lines), len(tt.wantTicks))
			}
			for i, l := range lines {
				if !approxEqual(l.Tick, tt.wantTicks[i], 1e-12) {
					t.Errorf("line %d tick = %v, want %v", i, l.Tick, tt.wantTicks[i])
				}
				if l.Dir != tt.dir {
					t.Errorf("line %d dir = %v, want %v", i, l.Dir, tt.dir)
				}
				if len(l.Swept) != len(l.Cross) {
					t.Fatalf("line %d: len(Swept)=%d != len(Cross)=%d", i, len(l.Swept), len(l.Cross))
				}
				for _, c := range l.Cross {
					if c != l.Tick {
						t.Fatalf("line %d cross value %v != tick %v", i, c, l.Tick)
					}
				}
				lo, hi := l.Swept[0], l.Swept[len(l.Swept)-1]
				if !approxEqual(lo, tt.sweptLo, 1e-9) || !approxEqual(hi, tt.sweptHi, 1e-9) {
					t.Errorf("line %d spans [%v, %v], want [%v, %v]", i, lo, hi, tt.sweptLo, tt.sweptHi)
				}
			}
		})
	}
}

func TestGridlineXY(t *testing.T) {
	xb, yb := series.NewBounds(0, 10), series.NewBounds(-5, 5)

	h, _ := Gridlines(xb, yb, DefaultGridOptions(DirX))
	x, y := h[0].XY()
	if x[0] >= 0 || y[0] != -5 {
		t.Errorf("horizontal XY starts at (%v, %v), want (<0, -5)", x[0], y[0])
	}

	v, _ := Gridlines(xb, yb, DefaultGridOptions(DirY))
	x, y = v[0].XY()
	if x[0] != 0 || y[0] >= -5 {
		t.Errorf("vertical XY starts at (%v, %v), want (0, <-5)", x[0], y[0])
	}
}

func TestGridlinesSingleTick(t *testing.T) {
	opts := DefaultGridOptions(DirX)
	opts.NTicks = 1
	lines, err := Gridlines(series.NewBounds(0, 1), series.NewBounds(2, 4), opts)
	if err != nil {
		t.Fatalf("Gridlines() error: %v", err)
	}
	if len(lines) != 1 || lines[0].Tick != 2 {
		t.Errorf("Gridlines() = %d lines, first tick %v; want 1 line at 2", len(lines), lines[0].Tick)
	}
}

func TestGridlinesErrors(t *testing.T) {
	xb, yb := series.NewBounds(0, 10), series.NewBounds(-5, 5)

	tests := []struct {
		name string
		opts GridOptions
	}{
		{"bad dir", GridOptions{NTicks: 5, ExtendPerc: 3, Dir: 'z', DxPerc: 0.1}},
		{"zero dir", GridOptions{NTicks: 5, ExtendPerc: 3, DxPerc: 0.1}},
		{"no ticks", GridOptions{NTicks: 0, ExtendPerc: 3, Dir: DirX, DxPerc: 0.1}},
		{"negative extend", GridOptions{NTicks: 5, ExtendPerc: -1, Dir: DirX, DxPerc: 0.1}},
		{"zero dx", GridOptions{NTicks: 5, ExtendPerc: 3, Dir: DirY, DxPerc: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := Gridlines(xb, yb, tt.opts)
			if !errs.Is(err, errs.ErrCodeConfiguration) {
				t.Errorf("Gridlines() error = %v, want CONFIGURATION", err)
			}
			if lines != nil {
				t.Error("Gridlines() should return no lines on error")
			}
		})
	}
}

func TestParseDir(t *testing.T) {
	for _, s := range []string{"x", "y"} {
		d, err := ParseDir(s)
		if err != nil || d.String() != s {
			t.Errorf("ParseDir(%q) = %v, %v", s, d, err)
		}
	}
	for _, s := range []string{"", "z", "xy", "X"} {
		if _, err := ParseDir(s); !errs.Is(err, errs.ErrCodeConfiguration) {
			t.Errorf("ParseDir(%q) error = %v, want CONFIGURATION", s, err)
		}
	}
}
