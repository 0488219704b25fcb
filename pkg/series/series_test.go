package series

import (
	"math"
	"testing"
	"time"

	errs "github.com/matzehuels/squiggly/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		x, y    []float64
		wantErr bool
	}{
		{"four points", []float64{0, 1, 2, 3}, []float64{0, 1, 4, 9}, false},
		{"three points", []float64{0, 1, 2}, []float64{0, 1, 4}, true},
		{"length mismatch", []float64{0, 1, 2, 3}, []float64{0, 1, 4, 9, 16}, true},
		{"nan y", []float64{0, 1, 2, 3}, []float64{0, math.NaN(), 4, 9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errs.Is(err, errs.ErrCodeShapeValidation) {
					t.Errorf("New() code = %v, want %v", errs.GetCode(err), errs.ErrCodeShapeValidation)
				}
				if s.Len() != 0 {
					t.Errorf("failed New() returned %d points", s.Len())
				}
			}
		})
	}
}

func TestNewCopies(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 4, 9}
	s, err := New(x, y)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	x[0] = 100
	if s.X[0] != 0 {
		t.Error("New() should copy its input")
	}
}

func TestOf(t *testing.T) {
	s, err := Of([]int{0, 1, 2, 3}, []float32{1.5, 2, 2.5, 3})
	if err != nil {
		t.Fatalf("Of() error: %v", err)
	}
	if s.X[3] != 3 || s.Y[0] != 1.5 {
		t.Errorf("Of() = %v, %v", s.X, s.Y)
	}
	if s.XIsTime {
		t.Error("Of() should produce a numeric x axis")
	}
}

func TestFromTimes(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ts := []time.Time{start, start.AddDate(0, 1, 0), start.AddDate(0, 2, 0), start.AddDate(0, 3, 0)}

	s, err := FromTimes(ts, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("FromTimes() error: %v", err)
	}
	if !s.XIsTime {
		t.Error("FromTimes() should flag the x axis as time")
	}
	if s.X[0] != float64(start.Unix()) {
		t.Errorf("X[0] = %v, want %v", s.X[0], start.Unix())
	}
	if !s.XBounds().Time {
		t.Error("XBounds() should carry the time flag")
	}

	if _, err := FromTimes(ts[:3], []float64{1, 2, 3}); !errs.Is(err, errs.ErrCodeShapeValidation) {
		t.Errorf("FromTimes() with 3 points error = %v, want shape validation", err)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	want := time.Date(2023, 6, 15, 12, 30, 0, 500_000_000, time.UTC)
	got := Time(Unix(want), nil)
	if d := got.Sub(want); d > time.Microsecond || d < -time.Microsecond {
		t.Errorf("Time(Unix(t)) = %v, want %v", got, want)
	}
}

func TestBounds(t *testing.T) {
	b := BoundsOf([]float64{3, -5, 10, 0})
	if b.Min != -5 || b.Max != 10 || b.Range() != 15 {
		t.Errorf("BoundsOf() = %+v", b)
	}

	if got := BoundsOf(nil); got != (Bounds{}) {
		t.Errorf("BoundsOf(nil) = %+v, want zero", got)
	}

	ext := NewBounds(0, 10).Extend(3)
	if math.Abs(ext.Min+0.3) > 1e-12 || math.Abs(ext.Max-10.3) > 1e-12 {
		t.Errorf("Extend(3) = %+v, want [-0.3, 10.3]", ext)
	}

	if swapped := NewBounds(5, -5); swapped.Min != -5 || swapped.Max != 5 {
		t.Errorf("NewBounds(5, -5) = %+v", swapped)
	}

	u := NewBounds(0, 1).Union(NewBounds(-2, 0.5))
	if u.Min != -2 || u.Max != 1 {
		t.Errorf("Union() = %+v", u)
	}
}

func TestBoundsOrigin(t *testing.T) {
	tests := []struct {
		name string
		b    Bounds
		want float64
	}{
		{"contains zero", NewBounds(-5, 5), 0},
		{"starts at zero", NewBounds(0, 10), 0},
		{"positive", NewBounds(2, 10), 2},
		{"negative", NewBounds(-10, -2), -10},
		{"time", Bounds{Min: 1.7e9, Max: 1.8e9, Time: true}, 1.7e9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.b.Origin(); got != tt.want {
				t.Errorf("Origin() = %v, want %v", got, tt.want)
			}
		})
	}
}
