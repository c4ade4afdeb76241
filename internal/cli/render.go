package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isogrid/pkg/pipeline"
	"github.com/matzehuels/isogrid/pkg/render"
	"github.com/matzehuels/isogrid/pkg/scene"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		view       viewFlags
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene snapshot to SVG, DOT, JSON, PNG or PDF",
		Long: `Render a scene snapshot.

Every node is placed at its projected tile centre and every connector is drawn
between its resolved anchors. With --fit the scene is centred (and, with
--apply-zoom, scaled) in the viewport before rendering.

PNG and PDF output need rsvg-convert on the PATH. Results are cached locally
for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &view, opts, formats, output, noCache)
		},
	}

	view.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, json, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Fit, "fit", false, "centre the scene in the viewport")
	cmd.Flags().BoolVar(&opts.ApplyZoom, "apply-zoom", false, "with --fit, scale the zoom to fill the viewport")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "show node labels instead of ids")
	cmd.Flags().BoolVar(&opts.Groups, "groups", false, "draw group tiles")
	cmd.Flags().Float64Var(&opts.PNGScale, "png-scale", pipeline.DefaultPNGScale, "PNG resolution multiplier")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input string, view *viewFlags, flags pipeline.Options, formats []string, output string, noCache bool) error {
	prog := newProgress(c.Logger)

	s, err := scene.ReadFile(input)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded scene", "nodes", len(s.Nodes), "groups", len(s.Groups), "connectors", len(s.Connectors))

	opts, err := view.options(c.Config.View, s.View)
	if err != nil {
		return err
	}
	opts.Fit = flags.Fit
	opts.ApplyZoom = flags.ApplyZoom
	opts.Labels = flags.Labels
	opts.Groups = flags.Groups
	opts.PNGScale = flags.PNGScale
	opts.Formats = formats
	opts.Logger = c.Logger

	for _, f := range formats {
		if (f == pipeline.FormatPNG || f == pipeline.FormatPDF) && !render.Available() {
			printWarning("rsvg-convert not found on PATH; %s output will fail", f)
		}
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()

	result, err := runner.Execute(ctx, s, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  result.CacheInfo.RenderHit,
		nodes:     result.Stats.NodeCount,
		conns:     result.Stats.ConnectorCount,
	}); err != nil {
		return err
	}
	prog.done("Rendered "+filepath.Base(input), "formats", len(opts.Formats), "cached", result.CacheInfo.RenderHit)
	return nil
}

// =============================================================================
// Artifact Output
// =============================================================================

type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
	cacheHit  bool
	nodes     int
	conns     int
}

// writeArtifacts writes each artifact next to the input or to the output path.
func writeArtifacts(p artifactWriteParams) error {
	formats := append([]string(nil), p.formats...)
	sort.Strings(formats)

	var paths []string
	for _, format := range formats {
		data, ok := p.artifacts[format]
		if !ok {
			continue
		}
		path := outputPath(p.output, p.input, format, len(formats) > 1)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %d file(s)", len(paths))
	printStats(p.nodes, p.conns, p.cacheHit)
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// outputPath derives the output file for one format. A single format writes
// to output as given; multiple formats treat output as a base path.
func outputPath(output, input, format string, multiple bool) string {
	if output != "" && !multiple {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
