package styles

import (
	"io"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/squiggly/pkg/errors"
	"github.com/matzehuels/squiggly/pkg/fonts"
)

// Theme collects every visual setting used when composing a figure.
type Theme struct {
	FontFamily string    `toml:"font_family"`
	LabelSize  float64   `toml:"label_size"`
	TitleSize  float64   `toml:"title_size"`
	Background string    `toml:"background"`
	TextColor  string    `toml:"text_color"`
	Highlight  string    `toml:"highlight"` // default annotation background
	Palette    []string  `toml:"palette"`
	Axis       LineStyle `toml:"axis"`
	MinorGrid  LineStyle `toml:"minor_grid"`
}

// DefaultTheme returns the stock hand-drawn theme.
func DefaultTheme() Theme {
	return Theme{
		FontFamily: fonts.FontFamily,
		LabelSize:  20,
		TitleSize:  30,
		Background: "white",
		TextColor:  "black",
		Highlight:  "yellow",
		Palette:    append([]string(nil), Palette...),
		Axis:       Axis(),
		MinorGrid:  MinorGrid(),
	}
}

// PaletteColor returns the i-th palette color, cycling.
func (t Theme) PaletteColor(i int) string {
	if len(t.Palette) == 0 {
		return Palette[i%len(Palette)]
	}
	return t.Palette[i%len(t.Palette)]
}

// Validate checks sizes, opacities and that every color parses.
func (t Theme) Validate() error {
	if t.LabelSize <= 0 || t.TitleSize <= 0 {
		return errs.New(errs.ErrCodeInvalidTheme, "font sizes must be positive, got label=%v title=%v", t.LabelSize, t.TitleSize)
	}
	presets := []struct {
		name string
		ls   LineStyle
	}{{"axis", t.Axis}, {"minor_grid", t.MinorGrid}}
	for _, p := range presets {
		if p.ls.Width <= 0 {
			return errs.New(errs.ErrCodeInvalidTheme, "%s width must be positive, got %v", p.name, p.ls.Width)
		}
		if p.ls.Alpha < 0 || p.ls.Alpha > 1 {
			return errs.New(errs.ErrCodeInvalidTheme, "%s alpha must be in [0, 1], got %v", p.name, p.ls.Alpha)
		}
	}
	colors := append([]string{t.Background, t.TextColor, t.Highlight, t.Axis.Color, t.MinorGrid.Color}, t.Palette...)
	for _, c := range colors {
		if _, err := ParseColor(c); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTheme reads a TOML theme. Keys missing from the document keep
// their [DefaultTheme] values.
func DecodeTheme(r io.Reader) (Theme, error) {
	t := DefaultTheme()
	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return Theme{}, errs.Wrap(errs.ErrCodeInvalidTheme, err, "decode theme")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Theme{}, errs.New(errs.ErrCodeInvalidTheme, "unknown theme key %q", keys[0].String())
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

// EncodeTheme writes t as a TOML document that [DecodeTheme] accepts.
func EncodeTheme(w io.Writer, t Theme) error {
	if err := toml.NewEncoder(w).Encode(t); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "encode theme")
	}
	return nil
}
