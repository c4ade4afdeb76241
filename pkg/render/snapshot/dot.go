package snapshot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/scene"
)

// Options configures DOT generation.
type Options struct {
	// Labels shows node labels instead of ids.
	Labels bool
	// Groups draws group tiles as filled diamonds under the nodes.
	Groups bool
}

const pointsPerInch = 72.0

// ToDOT converts a snapshot to Graphviz DOT with pinned node positions.
func ToDOT(snap *Snapshot, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  notranslate=true;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, pin=true];\n")
	buf.WriteString("\n")

	size := snap.TileSize
	if opts.Groups {
		for _, g := range snap.Groups {
			for i, c := range g.Tiles {
				fmt.Fprintf(&buf, "  %q [shape=diamond, label=\"\", fixedsize=true, width=%s, height=%s, fillcolor=\"#e6ecf5\", color=\"#9fb3d1\", pos=%s];\n",
					fmt.Sprintf("%s#%d", g.ID, i), inches(size.Width), inches(size.Height), pos(c))
			}
		}
		buf.WriteString("\n")
	}

	for _, n := range snap.Nodes {
		label := n.ID
		if opts.Labels && n.Label != "" {
			label = n.Label
		}
		fmt.Fprintf(&buf, "  %q [label=%q, pos=%s];\n", n.ID, label, pos(n.Center))
	}

	buf.WriteString("\n")
	for _, c := range snap.Connectors {
		ids := make([]string, len(c.Endpoints))
		for i, e := range c.Endpoints {
			if e.NodeID != "" {
				ids[i] = e.NodeID
				continue
			}
			ids[i] = fmt.Sprintf("%s#%d", c.ID, i)
			fmt.Fprintf(&buf, "  %q [shape=point, width=0.08, pos=%s];\n", ids[i], pos(e.Position))
		}
		attrs := edgeAttrs(c)
		for i := 1; i < len(ids); i++ {
			fmt.Fprintf(&buf, "  %q -- %q [%s];\n", ids[i-1], ids[i], attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func edgeAttrs(c Connector) string {
	attrs := []string{fmt.Sprintf("penwidth=%s", strconv.FormatFloat(max(c.StrokeWidth/4, 1), 'f', 2, 64))}
	if c.Color != "" {
		attrs = append(attrs, fmt.Sprintf("color=%q", c.Color))
	}
	switch c.Style {
	case scene.StyleDashed:
		attrs = append(attrs, "style=dashed")
	case scene.StyleDotted:
		attrs = append(attrs, "style=dotted")
	}
	return strings.Join(attrs, ", ")
}

// pos formats a pinned position; Graphviz Y points up.
func pos(c coords.Coords) string {
	return fmt.Sprintf("\"%s,%s!\"", strconv.FormatFloat(c.X, 'f', 2, 64), strconv.FormatFloat(-c.Y, 'f', 2, 64))
}

func inches(px float64) string {
	return strconv.FormatFloat(px/pointsPerInch, 'f', 3, 64)
}

// RenderSVG lays out a DOT graph with neato and returns SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

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

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.-]+)\s+([0-9.-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz <svg> header so the image scales
// with its container.
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
	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
