// Package render groups the output side of squiggly.
//
// # Overview
//
// Figures are composed into a backend-neutral [scene.Scene] by package
// figure. The subpackages here turn that scene into bytes:
//
//   - [styles]: line presets, themes, colors and text metrics
//   - [sink]: SVG, PNG and gonum/plot-backed document renderers
//
// Sinks only see coordinates and styling directives; they never call back
// into the squiggle transform.
//
// [scene.Scene]: github.com/matzehuels/squiggly/pkg/scene.Scene
// [styles]: github.com/matzehuels/squiggly/pkg/render/styles
// [sink]: github.com/matzehuels/squiggly/pkg/render/sink
package render
