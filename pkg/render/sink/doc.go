// Package sink provides output format renderers for squiggly scenes.
//
// # Overview
//
// A "sink" transforms a composed [scene.Scene] into a final output format.
// This package provides renderers for:
//
//   - SVG: hand-written vector output with the xkcd font stack
//   - PNG: raster output drawn with fogleman/gg and the Go Regular font
//   - PDF, EPS, TIFF, JPEG: document and image output via gonum/plot
//
// All sinks share one viewport: the scene's data extent is fitted into the
// canvas minus margins (wider at the top when there is a title), with the
// y axis flipped so larger values are drawn higher up.
//
// # SVG Output
//
//	svg := sink.RenderSVG(fig.Scene(), sink.WithLineIDs())
//
// # PNG Output
//
//	png, err := sink.RenderPNG(fig.Scene(), sink.WithScale(2))
//
// # Document Output
//
// [RenderPlot] routes the scene through gonum/plot with its axes hidden,
// so polylines, labels and highlight boxes land where the other sinks put
// them:
//
//	pdf, err := sink.RenderPlot(fig.Scene(), "pdf")
//
// [scene.Scene]: github.com/matzehuels/squiggly/pkg/scene.Scene
package sink
