package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/diagram"
	"github.com/matzehuels/isogrid/pkg/pipeline"
)

// viewFlags holds the view flags shared by the geometry commands. Zero values
// mean "not given" and fall back to the scene view, then the config file,
// then the pipeline defaults.
type viewFlags struct {
	zoom    float64
	scrollX float64
	scrollY float64
	width   float64
	height  float64
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64VarP(&f.zoom, "zoom", "z", 0, "zoom level (default 1)")
	cmd.Flags().Float64Var(&f.scrollX, "scroll-x", 0, "horizontal scroll in pixels")
	cmd.Flags().Float64Var(&f.scrollY, "scroll-y", 0, "vertical scroll in pixels")
	cmd.Flags().Float64Var(&f.width, "width", 0, "viewport width in pixels (default 1280)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "viewport height in pixels (default 720)")
}

// options resolves the view into validated pipeline options. sceneView may
// be nil.
func (f *viewFlags) options(cfg ViewConfig, sceneView *diagram.View) (pipeline.Options, error) {
	var opts pipeline.Options
	if sceneView != nil {
		opts.Zoom = sceneView.Zoom
		opts.Scroll = sceneView.Scroll
		opts.Viewport = sceneView.Viewport
	}
	if opts.Zoom == 0 {
		opts.Zoom = cfg.Zoom
	}
	if opts.Viewport.IsZero() {
		opts.Viewport = coords.PixelSize{Width: cfg.Width, Height: cfg.Height}
	}

	if f.zoom != 0 {
		opts.Zoom = f.zoom
	}
	if f.scrollX != 0 || f.scrollY != 0 {
		opts.Scroll = coords.Scroll{Position: coords.Coords{X: f.scrollX, Y: f.scrollY}}
	}
	if f.width != 0 {
		opts.Viewport.Width = f.width
	}
	if f.height != 0 {
		opts.Viewport.Height = f.height
	}

	if err := opts.ValidateView(); err != nil {
		return opts, err
	}
	return opts, nil
}

// parseTile parses "x,y" into a tile.
func parseTile(s string) (coords.Tile, error) {
	x, y, err := splitPair(s)
	if err != nil {
		return coords.Tile{}, err
	}
	tx, errX := strconv.Atoi(x)
	ty, errY := strconv.Atoi(y)
	if errX != nil || errY != nil {
		return coords.Tile{}, fmt.Errorf("invalid tile %q: want integers x,y", s)
	}
	return coords.Tile{X: tx, Y: ty}, nil
}

// parseCoords parses "x,y" into pixel coordinates.
func parseCoords(s string) (coords.Coords, error) {
	x, y, err := splitPair(s)
	if err != nil {
		return coords.Coords{}, err
	}
	px, errX := strconv.ParseFloat(x, 64)
	py, errY := strconv.ParseFloat(y, 64)
	if errX != nil || errY != nil {
		return coords.Coords{}, fmt.Errorf("invalid point %q: want numbers x,y", s)
	}
	return coords.Coords{X: px, Y: py}, nil
}

func parseTiles(args []string) ([]coords.Tile, error) {
	tiles := make([]coords.Tile, len(args))
	for i, a := range args {
		t, err := parseTile(a)
		if err != nil {
			return nil, err
		}
		tiles[i] = t
	}
	return tiles, nil
}

func splitPair(s string) (string, string, error) {
	x, y, ok := strings.Cut(strings.Trim(s, "() "), ",")
	if !ok {
		return "", "", fmt.Errorf("invalid pair %q: want x,y", s)
	}
	return strings.TrimSpace(x), strings.TrimSpace(y), nil
}
