// Package render groups the canopy visualizations.
//
// The [stack] subpackage draws a canopy as a vertical stack of layer boxes,
// ground at the bottom, using Graphviz:
//
//	dot := stack.ToDOT(c, stack.Options{Detailed: true})
//	svg, err := stack.RenderSVG(ctx, dot)
//
// [stack]: github.com/jihenghu/canort/pkg/render/stack
package render
