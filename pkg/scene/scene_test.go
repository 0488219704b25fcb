package scene

import (
	"testing"

	"github.com/matzehuels/squiggly/pkg/render/styles"
)

func TestZip(t *testing.T) {
	pts := Zip([]float64{1, 2, 3}, []float64{4, 5})
	if len(pts) != 2 || pts[1] != (Point{2, 5}) {
		t.Errorf("Zip() = %v", pts)
	}
}

func TestExtent(t *testing.T) {
	var empty Scene
	if _, _, ok := empty.Extent(); ok {
		t.Error("empty scene should have no extent")
	}

	s := Scene{
		Lines: []Polyline{
			{Points: Zip([]float64{0, 10}, []float64{-1, 1})},
		},
		Texts: []Text{{X: -2, Y: 3, Content: "label"}},
	}
	xb, yb, ok := s.Extent()
	if !ok {
		t.Fatal("Extent() ok = false")
	}
	if xb.Min != -2 || xb.Max != 10 || yb.Min != -1 || yb.Max != 3 {
		t.Errorf("Extent() = %+v %+v", xb, yb)
	}
}

func TestClone(t *testing.T) {
	s := Scene{
		Title: &Title{Content: "a"},
		Lines: []Polyline{{Points: Zip([]float64{0, 1}, []float64{0, 1}), Style: styles.Axis()}},
		Texts: []Text{{Content: "t"}},
	}
	c := s.Clone()
	c.Title.Content = "b"
	c.Lines[0].Points[0].X = 99
	c.Texts[0].Content = "u"

	if s.Title.Content != "a" || s.Lines[0].Points[0].X != 0 || s.Texts[0].Content != "t" {
		t.Error("Clone() should not share state with the original")
	}
}
