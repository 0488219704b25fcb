package squiggle

import (
	"math"
	"testing"

	errs "github.com/matzehuels/squiggly/pkg/errors"
)

func sineInput() (x, y []float64) {
	x = make([]float64, 100)
	y = make([]float64, 100)
	for i := range x {
		x[i] = float64(i)
		y[i] = math.Sin(x[i])
	}
	return x, y
}

func TestSquigglifySpan(t *testing.T) {
	x, y := sineInput()
	opts := DefaultOptions()

	newX, newY, err := Squigglify(x, y, opts, NewSource(1))
	if err != nil {
		t.Fatalf("Squigglify() error: %v", err)
	}
	if len(newX) != len(newY) {
		t.Fatalf("len(newX)=%d != len(newY)=%d", len(newX), len(newY))
	}
	if newX[0] != 0 || newX[len(newX)-1] != 99 {
		t.Errorf("x span = [%v, %v], want [0, 99]", newX[0], newX[len(newX)-1])
	}

	step := 99 * opts.DxPerc / 100
	for i := 1; i < len(newX); i++ {
		if d := newX[i] - newX[i-1]; !approxEqual(d, step, step) {
			t.Fatalf("step %d = %v, want ~%v", i, d, step)
		}
	}
}

func TestSquigglifyNoNoiseIsDeterministic(t *testing.T) {
	x, y := sineInput()
	opts := DefaultOptions()
	opts.NoiseStrength = 0

	newX, newY, err := Squigglify(x, y, opts, nil)
	if err != nil {
		t.Fatalf("Squigglify() error: %v", err)
	}

	want, err := Smooth(Interp(newX, x, y), opts.AutocorrPerc)
	if err != nil {
		t.Fatalf("Smooth() error: %v", err)
	}
	for i := range want {
		if newY[i] != want[i] {
			t.Fatalf("newY[%d] = %v, want %v", i, newY[i], want[i])
		}
	}
}

func TestSquigglifySineTracksSmoothedCurve(t *testing.T) {
	x, y := sineInput()
	opts := DefaultOptions()
	opts.NoiseStrength = 0

	newX, clean, err := Squigglify(x, y, opts, nil)
	if err != nil {
		t.Fatalf("Squigglify() error: %v", err)
	}

	// Independent reference: naive moving average of the interpolated curve.
	interp := Interp(newX, x, y)
	h := Window(len(interp), opts.AutocorrPerc) / 2
	ref := make([]float64, len(interp))
	for i := range interp {
		sum, n := 0.0, 0
		for j := i - h; j <= i+h; j++ {
			if j >= 0 && j < len(interp) {
				sum += interp[j]
				n++
			}
		}
		ref[i] = sum / float64(n)
	}
	if r := correlation(clean, ref); r < 0.999999 {
		t.Errorf("correlation with moving average = %v, want ~1", r)
	}

	opts.NoiseStrength = 0.1
	_, noisy, err := Squigglify(x, y, opts, NewSource(7))
	if err != nil {
		t.Fatalf("Squigglify() error: %v", err)
	}
	if r := correlation(noisy, clean); r < 0.95 {
		t.Errorf("noisy/clean correlation = %v, want > 0.95", r)
	}
}

func TestSquigglifyNoiseLevel(t *testing.T) {
	x, y := sineInput()
	opts := DefaultOptions()

	opts.NoiseStrength = 0
	_, clean, _ := Squigglify(x, y, opts, nil)

	opts.NoiseStrength = 0.5
	_, noisy, err := Squigglify(x, y, opts, NewSource(42))
	if err != nil {
		t.Fatalf("Squigglify() error: %v", err)
	}

	var ss float64
	for i := range noisy {
		d := noisy[i] - clean[i]
		ss += d * d
	}
	// Averaging ~51 samples shrinks the noise by about sqrt(51).
	std := math.Sqrt(ss / float64(len(noisy)))
	if std < 0.035 || std > 0.15 {
		t.Errorf("residual std = %v, want within [0.035, 0.15]", std)
	}
}

func TestSquigglifySeeded(t *testing.T) {
	x, y := sineInput()
	opts := DefaultOptions()

	_, a, _ := Squigglify(x, y, opts, NewSource(3))
	_, b, _ := Squigglify(x, y, opts, NewSource(3))
	_, c, _ := Squigglify(x, y, opts, NewSource(4))

	same, differs := true, false
	for i := range a {
		same = same && a[i] == b[i]
		differs = differs || a[i] != c[i]
	}
	if !same {
		t.Error("same seed should give identical output")
	}
	if !differs {
		t.Error("different seeds should give different output")
	}
}

func TestSquigglifyUnsortedInput(t *testing.T) {
	x := []float64{3, 0, 2, 1}
	y := []float64{30, 0, 20, 10}
	opts := Options{DxPerc: 10, NoiseStrength: 0, AutocorrPerc: 20}

	newX, newY, err := Squigglify(x, y, opts, nil)
	if err != nil {
		t.Fatalf("Squigglify() error: %v", err)
	}
	if len(newX) != 11 || newX[0] != 0 || newX[10] != 3 {
		t.Fatalf("newX = %v, want 11 samples over [0, 3]", newX)
	}
	for i := 1; i < 10; i++ {
		if !approxEqual(newY[i], 10*newX[i], 1e-9) {
			t.Errorf("newY[%d] = %v, want %v", i, newY[i], 10*newX[i])
		}
	}
	if x[0] != 3 {
		t.Error("Squigglify() must not reorder the caller's slice")
	}
}

func TestSquigglifyErrors(t *testing.T) {
	x, y := sineInput()
	valid := DefaultOptions()

	tests := []struct {
		name string
		x, y []float64
		opts Options
		src  Source
		code errs.Code
	}{
		{"three points", x[:3], y[:3], valid, NewSource(1), errs.ErrCodeShapeValidation},
		{"mismatched", x, y[:50], valid, NewSource(1), errs.ErrCodeShapeValidation},
		{"nan", []float64{0, 1, math.NaN(), 3}, []float64{0, 1, 2, 3}, valid, NewSource(1), errs.ErrCodeShapeValidation},
		{"zero dx", x, y, Options{DxPerc: 0, NoiseStrength: 0.5, AutocorrPerc: 5}, NewSource(1), errs.ErrCodeConfiguration},
		{"negative noise", x, y, Options{DxPerc: 0.1, NoiseStrength: -1, AutocorrPerc: 5}, NewSource(1), errs.ErrCodeConfiguration},
		{"autocorr over 100", x, y, Options{DxPerc: 0.1, NoiseStrength: 0.5, AutocorrPerc: 101}, NewSource(1), errs.ErrCodeConfiguration},
		{"nil source", x, y, valid, nil, errs.ErrCodeConfiguration},
		{"too many samples", x, y, Options{DxPerc: 1e-6, NoiseStrength: 0, AutocorrPerc: 5}, nil, errs.ErrCodeConfiguration},
		{"zero range", []float64{2, 2, 2, 2}, []float64{0, 1, 2, 3}, valid, NewSource(1), errs.ErrCodeNumericDegeneracy},
		{"window too small", x, y, Options{DxPerc: 10, NoiseStrength: 0, AutocorrPerc: 5}, nil, errs.ErrCodeNumericDegeneracy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newX, newY, err := Squigglify(tt.x, tt.y, tt.opts, tt.src)
			if !errs.Is(err, tt.code) {
				t.Fatalf("Squigglify() error = %v, want code %s", err, tt.code)
			}
			if newX != nil || newY != nil {
				t.Error("Squigglify() should produce no output on error")
			}
		})
	}
}

func correlation(a, b []float64) float64 {
	n := float64(len(a))
	var ma, mb float64
	for i := range a {
		ma += a[i]
		mb += b[i]
	}
	ma /= n
	mb /= n
	var cov, va, vb float64
	for i := range a {
		da, db := a[i]-ma, b[i]-mb
		cov += da * db
		va += da * da
		vb += db * db
	}
	return cov / math.Sqrt(va*vb)
}
