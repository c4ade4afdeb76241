package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/matzehuels/isogrid/pkg/diagram"
	"github.com/matzehuels/isogrid/pkg/observability"
	"github.com/matzehuels/isogrid/pkg/render"
	"github.com/matzehuels/isogrid/pkg/render/snapshot"
	"github.com/matzehuels/isogrid/pkg/scene"
)

// RenderScene projects s through view and encodes the snapshot in every
// format listed in opts. The SVG is rendered once and reused for PNG and PDF.
func RenderScene(ctx context.Context, s *scene.Scene, view diagram.View, opts Options) (map[string][]byte, error) {
	snap, err := snapshot.Project(s, view)
	if err != nil {
		return nil, err
	}
	dot := snapshot.ToDOT(snap, snapshot.Options{Labels: opts.Labels, Groups: opts.Groups})

	var svg []byte
	svgOnce := func() ([]byte, error) {
		if svg != nil {
			return svg, nil
		}
		out, err := snapshot.RenderSVG(ctx, dot)
		if err != nil {
			return nil, err
		}
		svg = out
		return svg, nil
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, format, snap, dot, svgOnce, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, format string, snap *snapshot.Snapshot, dot string, svg func() ([]byte, error), opts Options) (data []byte, err error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, format)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, format, time.Since(start), err) }()

	switch format {
	case FormatSVG:
		return svg()
	case FormatDOT:
		return []byte(dot), nil
	case FormatJSON:
		return json.MarshalIndent(snap, "", "  ")
	case FormatPNG:
		out, err := svg()
		if err != nil {
			return nil, err
		}
		return render.ToPNG(ctx, out, opts.PNGScale)
	case FormatPDF:
		out, err := svg()
		if err != nil {
			return nil, err
		}
		return render.ToPDF(ctx, out)
	default:
		return nil, ValidateFormat(format)
	}
}
