package styles

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	errs "github.com/matzehuels/squiggly/pkg/errors"
)

// Palette is the default cycle of line colors.
var Palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Hex normalizes a named or short hex color to "#rrggbb".
func Hex(s string) (string, error) {
	c, err := ParseColor(s)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), nil
}

// ParseColor parses "#rgb", "#rrggbb" or an SVG color name such as "navy"
// or "lightgrey". The result is opaque.
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if named, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: named.R, G: named.G, B: named.B, A: 0xff}, nil
	}
	// colorful.Hex scans leniently, so only the two exact hex lengths get through.
	if !strings.HasPrefix(v, "#") || (len(v) != 4 && len(v) != 7) {
		return color.NRGBA{}, errs.New(errs.ErrCodeInvalidTheme, "invalid color %q: want #rgb, #rrggbb or a color name", s)
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return color.NRGBA{}, errs.Wrap(errs.ErrCodeInvalidTheme, err, "invalid color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// WithAlpha returns c with its alpha set from a [0, 1] opacity.
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(max(0, min(1, alpha))*255 + 0.5)
	return c
}
