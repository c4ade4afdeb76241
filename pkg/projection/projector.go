package projection

import (
	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/errors"
)

// Projector captures one frame's view state so callers converting many
// positions validate zoom and viewport once.
type Projector struct {
	zoom     float64
	scroll   coords.Scroll
	viewport coords.PixelSize
	tile     coords.PixelSize
}

// New validates the view state and returns a Projector for it.
func New(zoom float64, scroll coords.Scroll, viewport coords.PixelSize) (Projector, error) {
	if err := validate(zoom, viewport); err != nil {
		return Projector{}, err
	}
	return Projector{
		zoom:     zoom,
		scroll:   scroll,
		viewport: viewport,
		tile:     projectedTileSize(zoom),
	}, nil
}

// Zoom returns the zoom level the projector was built with.
func (p Projector) Zoom() float64 { return p.zoom }

// Scroll returns the scroll state the projector was built with.
func (p Projector) Scroll() coords.Scroll { return p.scroll }

// Viewport returns the viewport size the projector was built with.
func (p Projector) Viewport() coords.PixelSize { return p.viewport }

// TileSize returns the projected size of one tile.
func (p Projector) TileSize() coords.PixelSize { return p.tile }

// TileToScreen projects tile at the given anchor.
func (p Projector) TileToScreen(tile coords.Tile, origin coords.Origin) coords.Coords {
	return tileToScreen(tile, p.tile, p.scroll, origin, p.viewport)
}

// ScreenToTile returns the tile under a pixel position.
func (p Projector) ScreenToTile(mouse coords.Coords) (coords.Tile, error) {
	if err := errors.ValidateCoords(mouse.X, mouse.Y); err != nil {
		return coords.Tile{}, err
	}
	return screenToTile(mouse, p.tile, p.scroll, p.viewport), nil
}

// Corners returns the four vertices of a tile's diamond in the order
// top, right, bottom, left.
func (p Projector) Corners(tile coords.Tile) [4]coords.Coords {
	return [4]coords.Coords{
		p.TileToScreen(tile, coords.OriginTop),
		p.TileToScreen(tile, coords.OriginRight),
		p.TileToScreen(tile, coords.OriginBottom),
		p.TileToScreen(tile, coords.OriginLeft),
	}
}

// WithScroll returns a copy of p using a different scroll state.
func (p Projector) WithScroll(s coords.Scroll) Projector {
	p.scroll = s
	return p
}
