// Package styles defines the visual vocabulary shared by the figure
// composer and the output sinks.
//
// # Line Presets
//
// Gridlines use one of two presets: [Axis] (solid black, width 2) for the
// reference axis and tick marks, and [MinorGrid] (dashed grey, half
// opacity) for every other ruling. Both are carried in a [Theme] so callers
// can restyle them without touching package state.
//
// # Themes
//
// A [Theme] holds fonts, sizes, colors, the line palette and the presets.
// Themes can be loaded from TOML with [DecodeTheme]:
//
//	font_family = "Humor Sans"
//	title_size  = 36
//	palette     = ["#e41a1c", "#377eb8"]
//
//	[minor_grid]
//	color  = "#cccccc"
//	width  = 1
//	alpha  = 0.8
//	dashed = true
//
// # Text
//
// [TextWidth] gives a font-independent width estimate used for layout
// margins and label backgrounds; [EscapeXML] escapes text for SVG output.
package styles
