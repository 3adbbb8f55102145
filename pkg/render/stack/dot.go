package stack

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"
	"gonum.org/v1/gonum/floats"

	"github.com/jihenghu/canort/pkg/canopy"
	"github.com/jihenghu/canort/pkg/errors"
	"github.com/jihenghu/canort/pkg/observability"
	"github.com/jihenghu/canort/pkg/soil"
)

// Output formats understood by [Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// Options configures stack diagram rendering.
type Options struct {
	// Title is drawn above the stack when set.
	Title string

	// Detailed adds leaf area index, temperature and leaf thickness to each
	// layer label. When false, only the layer index and elevations are shown.
	Detailed bool

	// Soil, when set, is drawn as a ground box beneath layer 0.
	Soil *soil.Soil
}

// Box heights in inches. Each layer gets minHeight plus its share of
// scaleHeight proportional to its thickness.
const (
	boxWidth    = 3.0
	minHeight   = 0.5
	scaleHeight = 4.0
)

// ToDOT converts a canopy to Graphviz DOT. Layers are emitted top first so
// that a top-to-bottom layout puts the ground at the bottom. Fill colour
// darkens with leaf area index; edges between layers carry the elevation of
// the shared interface.
func ToDOT(c *canopy.Canopy, opts Options) string {
	layers := c.Layers()
	maxLAI := floats.Max(c.LeafAreaIndices())

	var buf bytes.Buffer
	buf.WriteString("digraph canopy {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  ranksep=0;\n")
	buf.WriteString("  node [shape=box, style=filled, fontsize=14, fixedsize=true];\n")
	buf.WriteString("  edge [arrowhead=none, fontsize=11];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  labelloc=t;\n  label=%q;\n", opts.Title)
	}
	buf.WriteString("\n")

	for i := len(layers) - 1; i >= 0; i-- {
		l := layers[i]
		height := minHeight + scaleHeight*l.Thickness()/c.TotalHeight()
		fmt.Fprintf(&buf, "  %s [label=%q, width=%.2f, height=%.2f, fillcolor=%q];\n",
			nodeID(i), layerLabel(i, l, opts.Detailed), boxWidth, height, leafColor(l.LeafAreaIndex(), maxLAI))
	}
	if opts.Soil != nil {
		fmt.Fprintf(&buf, "  ground [label=%q, width=%.2f, height=%.2f, fillcolor=\"#a1887f\", fontcolor=white];\n",
			soilLabel(opts.Soil), boxWidth, minHeight)
	}

	buf.WriteString("\n")
	for i := len(layers) - 1; i > 0; i-- {
		fmt.Fprintf(&buf, "  %s -> %s [label=\"z = %.2f m\"];\n", nodeID(i), nodeID(i-1), layers[i].Bottom())
	}
	if opts.Soil != nil {
		fmt.Fprintf(&buf, "  %s -> ground [label=\"z = 0 m\"];\n", nodeID(0))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "layer" + strconv.Itoa(i) }

func layerLabel(i int, l canopy.Layer, detailed bool) string {
	head := fmt.Sprintf("Layer %d\n%.2f to %.2f m", i, l.Bottom(), l.Top())
	if !detailed {
		return head
	}
	parts := []string{
		head,
		fmt.Sprintf("LAI %.2f", l.LeafAreaIndex()),
		fmt.Sprintf("T %.2f K", l.Temperature()),
		fmt.Sprintf("leaf %.3f mm", l.LeafThickness()*1e3),
	}
	return strings.Join(parts, "\n")
}

func soilLabel(s *soil.Soil) string {
	return fmt.Sprintf("Soil (%s)\nmv %.2f, T %.2f K", s.Model(), s.Moisture(), s.Temperature())
}

// leafColor interpolates from pale to dark green as lai approaches maxLAI.
func leafColor(lai, maxLAI float64) string {
	pale := [3]float64{0xe8, 0xf5, 0xe9}
	dark := [3]float64{0x1b, 0x5e, 0x20}
	f := 0.0
	if maxLAI > 0 {
		f = lai / maxLAI
	}
	var rgb [3]int
	for k := range rgb {
		rgb[k] = int(pale[k] + f*(dark[k]-pale[k]) + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// Render produces the diagram in the given format ("dot" or "svg") and
// reports the run to the registered render hooks.
func Render(ctx context.Context, c *canopy.Canopy, format string, opts Options) (out []byte, err error) {
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format, c.LayerCount())
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, format, len(out), time.Since(start), err)
	}()

	dot := ToDOT(c, opts)
	switch strings.ToLower(format) {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		svg, err := RenderSVG(ctx, dot)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		return svg, nil
	}
	return nil, errors.Field(errors.ErrCodeUnsupported, "format", "unknown format %q (want dot or svg)", format)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
