package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/pipeline"
	"github.com/matzehuels/isogrid/pkg/region"
	"github.com/matzehuels/isogrid/pkg/scene"
)

const negativeHint = `
Negative values look like flags to the shell parser; put them after "--"
or wrap them in parentheses, e.g. "(-2,3)".`

// projectCommand creates the project command (tile to screen).
func (c *CLI) projectCommand() *cobra.Command {
	var (
		view   viewFlags
		origin string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "project x,y [x,y...]",
		Short: "Convert tiles to screen coordinates",
		Long: `Convert grid tiles to screen pixel coordinates.

The origin selects which point of the tile's diamond is returned: center
(default), top, bottom, left or right.` + negativeHint,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := coords.ParseOrigin(origin)
			if err != nil {
				return err
			}
			tiles, err := parseTiles(args)
			if err != nil {
				return err
			}
			opts, err := view.options(c.Config.View, nil)
			if err != nil {
				return err
			}
			p, err := opts.View().Projector()
			if err != nil {
				return err
			}

			type row struct {
				Tile  coords.Tile   `json:"tile"`
				Point coords.Coords `json:"point"`
			}
			rows := make([]row, len(tiles))
			for i, t := range tiles {
				rows[i] = row{Tile: t, Point: p.TileToScreen(t, o)}
			}
			if asJSON {
				return printJSON(rows)
			}
			for _, r := range rows {
				printMapping(r.Tile.String(), formatCoords(r.Point))
			}
			return nil
		},
	}

	view.register(cmd)
	cmd.Flags().StringVar(&origin, "origin", "center", "tile anchor: center, top, bottom, left, right")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// locateCommand creates the locate command (screen to tile).
func (c *CLI) locateCommand() *cobra.Command {
	var (
		view   viewFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "locate x,y [x,y...]",
		Short: "Find the tile under screen coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := view.options(c.Config.View, nil)
			if err != nil {
				return err
			}
			p, err := opts.View().Projector()
			if err != nil {
				return err
			}

			type row struct {
				Point coords.Coords `json:"point"`
				Tile  coords.Tile   `json:"tile"`
			}
			rows := make([]row, len(args))
			for i, a := range args {
				pt, err := parseCoords(a)
				if err != nil {
					return err
				}
				tile, err := p.ScreenToTile(pt)
				if err != nil {
					return err
				}
				rows[i] = row{Point: pt, Tile: tile}
			}
			if asJSON {
				return printJSON(rows)
			}
			for _, r := range rows {
				printMapping(formatCoords(r.Point), r.Tile.String())
			}
			return nil
		},
	}

	view.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// subsetCommand creates the subset command.
func (c *CLI) subsetCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "subset x1,y1 x2,y2",
		Short: "List every tile in the rectangle spanned by two corners",
		Long: `List every tile in the rectangle spanned by two corners, inclusive,
ordered by x then y.` + negativeHint,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			corners, err := parseTiles(args)
			if err != nil {
				return err
			}
			tiles, err := region.GridSubset(corners)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(tiles)
			}
			size, err := region.BoundingBoxSize(corners)
			if err != nil {
				return err
			}
			parts := make([]string, len(tiles))
			for i, t := range tiles {
				parts[i] = t.String()
			}
			fmt.Fprintln(stdout, strings.Join(parts, " "))
			printDetail("%d tiles (%s)", len(tiles), size)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

// boundsCommand creates the bounds command.
func (c *CLI) boundsCommand() *cobra.Command {
	var (
		view    viewFlags
		asJSON  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "bounds [scene]",
		Short: "Compute the projected bounding box of a scene",
		Long: `Compute the projected bounding box of a scene, padded by four tiles on
every side. The view comes from the flags, the scene's [view] section or the
config file, in that order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.ReadFile(args[0])
			if err != nil {
				return err
			}
			opts, err := view.options(c.Config.View, s.View)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			box, hit, err := runner.BoundsWithCacheInfo(cmd.Context(), s.Positions(), opts)
			if err != nil {
				return fmt.Errorf("bounds: %w", err)
			}
			if asJSON {
				return printJSON(box)
			}
			printKeyValue("top-left", formatCoords(box.TopLeft()))
			printKeyValue("size", fmt.Sprintf("%.2f x %.2f", box.Width, box.Height))
			printKeyValue("center", formatCoords(box.Center()))
			printStats(len(s.Nodes), len(s.Connectors), hit)
			return nil
		},
	}

	view.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

// fitCommand creates the fit command.
func (c *CLI) fitCommand() *cobra.Command {
	var (
		view      viewFlags
		applyZoom bool
		minZoom   float64
		maxZoom   float64
		asJSON    bool
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "fit [scene]",
		Short: "Compute the view that centres a scene in the viewport",
		Long: `Compute the scroll that centres a scene's bounding box in the viewport.

With --apply-zoom the zoom is also scaled so the box fills the viewport,
clamped to --min-zoom and --max-zoom. The zoom ratio is always reported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scene.ReadFile(args[0])
			if err != nil {
				return err
			}
			opts, err := view.options(c.Config.View, s.View)
			if err != nil {
				return err
			}
			opts.ApplyZoom = applyZoom
			opts.MinZoom = minZoom
			opts.MaxZoom = maxZoom

			return c.runFit(cmd.Context(), s, opts, asJSON, noCache)
		},
	}

	view.register(cmd)
	cmd.Flags().BoolVar(&applyZoom, "apply-zoom", false, "scale the zoom to fill the viewport")
	cmd.Flags().Float64Var(&minZoom, "min-zoom", 0, "lowest applied zoom (default 0.1)")
	cmd.Flags().Float64Var(&maxZoom, "max-zoom", 0, "highest applied zoom (default 4)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runFit(ctx context.Context, s *scene.Scene, opts pipeline.Options, asJSON, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	fit, hit, err := runner.FitWithCacheInfo(ctx, s.Positions(), opts)
	if err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	if asJSON {
		return printJSON(fit.View(opts.Viewport))
	}
	printKeyValue("scroll", formatCoords(fit.Scroll.Position))
	printKeyValue("zoom", fmt.Sprintf("%.4g", fit.Zoom))
	printKeyValue("ratio", fmt.Sprintf("%.4f", fit.ZoomRatio))
	printStats(len(s.Nodes), len(s.Connectors), hit)
	return nil
}

// =============================================================================
// Formatting
// =============================================================================

func formatCoords(c coords.Coords) string {
	return fmt.Sprintf("(%.2f, %.2f)", c.X, c.Y)
}

func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
