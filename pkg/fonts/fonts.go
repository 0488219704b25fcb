// Package fonts provides font names for vector output and the parsed
// TrueType face used by raster backends.
//
// Vector backends reference the handwriting font by name and fall back to
// common system fonts. Raster backends cannot rely on installed fonts, so
// they draw with the Go Regular face, which ships with golang.org/x/image
// and is parsed once on first use.
package fonts

import (
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily is the CSS font-family name for the xkcd-script font.
const FontFamily = "xkcd Script"

// FallbackFontFamily provides fallback fonts for systems without the handwriting font.
const FallbackFontFamily = `'xkcd Script', 'Humor Sans', 'Comic Sans MS', 'Bradley Hand', 'Segoe Script', sans-serif`

// Parsed Go Regular font (computed once on first access).
var (
	regular     *truetype.Font
	regularErr  error
	regularOnce sync.Once
)

// Regular returns the parsed Go Regular TrueType font.
func Regular() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	return regular, regularErr
}

// Face returns a Go Regular face at the given point size.
func Face(size float64) (font.Face, error) {
	f, err := Regular()
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, Hinting: font.HintingFull}), nil
}
