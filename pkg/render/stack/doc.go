// Package stack renders a canopy as a vertical stack of layer boxes.
//
// # Usage
//
// Convert a canopy to DOT, then render to SVG:
//
//	dot := stack.ToDOT(c, stack.Options{Detailed: true, Soil: s})
//	svg, err := stack.RenderSVG(ctx, dot)
//
// Or let [Render] pick by format name and report to the observability hooks:
//
//	out, err := stack.Render(ctx, c, stack.FormatSVG, stack.Options{})
//
// Box heights grow with layer thickness and the fill darkens with leaf area
// index, so a dense crown over a sparse understory is visible at a glance.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering.
package stack
