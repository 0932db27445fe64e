// Package render hosts output sinks for composed slide layouts.
//
// # Overview
//
// Composition produces placements in canvas inches; the render tree turns
// them into reviewable artifacts. It provides:
//
//   - Wireframe SVG previews (in [wireframe] subpackage)
//
// The JSON artifact is not rendered here: it is the layout itself,
// marshaled by the pipeline package.
//
// # Wireframe Previews
//
// The [wireframe] subpackage renders composed slides as vertically stacked
// SVG pages. Filled regions (backgrounds, accent bars, chart areas) appear
// as solid rectangles in their theme colors, text regions as dashed
// outlines with their wrapped lines. Options add a column-grid overlay and
// per-region annotations for layout review.
//
//	pages := []wireframe.Slide{{Label: "Slide 1", Placements: placements}}
//	svg := wireframe.RenderSVG(canvas, pages,
//	    wireframe.WithScale(96),
//	    wireframe.WithGridOverlay(cfg),
//	    wireframe.WithAnnotations())
//
// [wireframe]: https://pkg.go.dev/github.com/neuradeck/slidekit/pkg/render/wireframe
package render
