// Package figure composes hand-drawn charts.
//
// A [Figure] accumulates squiggly data lines, gridlines, tick labels, a
// title, annotations and an optional legend into a [scene.Scene]. It does
// no drawing itself; pass the scene to a sink in package sink to get SVG,
// PNG or PDF bytes.
//
//	fig, err := figure.New(figure.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	if err := fig.DrawLine(s, figure.WithLabel("visitors")); err != nil {
//	    return err
//	}
//	if err := fig.DrawGrid(s.XBounds(), s.YBounds()); err != nil {
//	    return err
//	}
//	fig.DrawTitle("Site traffic")
//	if err := fig.DrawLegend(); err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(fig.Scene())
//
// # Saved Lines
//
// Data lines are saved by default and listed by [Figure.DrawLegend]. Each
// saved line gets a stable id derived from its position and label, and the
// next palette color when none is given. Pass [Unsaved] for helper lines.
//
// # Randomness
//
// All noise comes from one source per figure. [WithSeed] makes the whole
// figure reproducible; without it every figure wobbles differently.
package figure
