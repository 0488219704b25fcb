package styles

// LineStyle describes how a polyline is stroked.
type LineStyle struct {
	Color  string  `toml:"color"`  // hex "#rrggbb" or a named color
	Width  float64 `toml:"width"`  // stroke width in points
	Alpha  float64 `toml:"alpha"`  // opacity in [0, 1]
	Dashed bool    `toml:"dashed"` // draw with a dash pattern
}

// Axis is the solid black preset used for the reference axis and tick marks.
func Axis() LineStyle {
	return LineStyle{Color: "black", Width: 2, Alpha: 1}
}

// MinorGrid is the dashed grey preset used for ordinary gridlines.
func MinorGrid() LineStyle {
	return LineStyle{Color: "grey", Width: 1, Alpha: 0.5, Dashed: true}
}

// DashPattern is the on/off dash length in units of the stroke width.
var DashPattern = []float64{3.7, 1.6}

// Dashes returns the dash pattern scaled to the style's width, or nil for
// solid lines.
func (s LineStyle) Dashes() []float64 {
	if !s.Dashed {
		return nil
	}
	w := max(s.Width, 1)
	out := make([]float64, len(DashPattern))
	for i, d := range DashPattern {
		out[i] = d * w
	}
	return out
}
