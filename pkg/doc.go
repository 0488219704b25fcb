// Package pkg provides the core libraries for squiggly hand-drawn charts.
//
// # Overview
//
// Squiggly draws line charts that look sketched with a pen, in the style of
// XKCD: data lines wobble, gridlines are drawn freehand and labels use a
// handwriting font. The pkg directory is organized into four main areas:
//
//  1. [series] and [squiggle] - Data model and the squigglify transform
//  2. [figure] and [scene] - Composition of lines, grids, annotations and legends
//  3. [render] - Themes, colors and output backends (SVG, PNG, PDF, EPS, TIFF, JPEG)
//  4. [pipeline] - Orchestration (compose → render) with artifact caching
//
// # Architecture
//
// The typical data flow through squiggly:
//
//	x/y arrays or timestamps
//	         ↓
//	    [series] package (validated Series, Bounds)
//	         ↓
//	    [squiggle] package (resample, noise, smoothing, gridlines)
//	         ↓
//	    [figure] package (draw calls build a scene)
//	         ↓
//	    [render/sink] package (scene → bytes)
//	         ↓
//	    SVG/PNG/PDF/EPS/TIFF/JPEG output
//
// # Quick Start
//
// Draw a wobbly sine and write it as SVG:
//
//	import (
//	    "github.com/matzehuels/squiggly/pkg/figure"
//	    "github.com/matzehuels/squiggly/pkg/render/sink"
//	    "github.com/matzehuels/squiggly/pkg/series"
//	)
//
//	s, err := series.New(x, y)
//	if err != nil {
//	    return err
//	}
//	fig, err := figure.New(figure.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	if err := fig.DrawLine(s, figure.WithLabel("sin(x)")); err != nil {
//	    return err
//	}
//	if err := fig.DrawGrid(s.XBounds(), s.YBounds()); err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(fig.Scene())
//
// # Supporting Packages
//
//   - [errors] - Coded errors (SHAPE_VALIDATION, CONFIGURATION, NUMERIC_DEGENERACY, ...)
//   - [fonts] - Font family names and the embedded fallback face
//   - [cache] - File and null caches for rendered artifacts
//   - [observability] - Pipeline hooks for metrics and tracing
//   - [buildinfo] - Version information for the CLI
//
// [series]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/series
// [squiggle]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/squiggle
// [figure]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/figure
// [scene]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/scene
// [render]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/fonts
// [cache]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/squiggly/pkg/buildinfo
package pkg
