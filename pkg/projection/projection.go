package projection

import (
	"fmt"
	"math"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/errors"
)

// =============================================================================
// Projection Constants
// =============================================================================

const (
	// TileSize is the edge length of a tile before projection, in pixels at zoom 1.
	TileSize = 100.0

	// WidthMultiplier and HeightMultiplier give the diamond's aspect after
	// projection. The ratio between them does not depend on zoom.
	WidthMultiplier  = 1.415
	HeightMultiplier = 0.819
)

// =============================================================================
// Tile Sizes
// =============================================================================

// ProjectedTileSize returns the pixel width and height of one tile diamond at zoom.
func ProjectedTileSize(zoom float64) (coords.PixelSize, error) {
	if err := errors.ValidateZoom(zoom); err != nil {
		return coords.PixelSize{}, err
	}
	return projectedTileSize(zoom), nil
}

// UnprojectedTileSize returns the edge length of one tile at zoom before the
// isometric transform is applied. Connector paths are drawn in this space.
func UnprojectedTileSize(zoom float64) (float64, error) {
	if err := errors.ValidateZoom(zoom); err != nil {
		return 0, err
	}
	return TileSize * zoom, nil
}

func projectedTileSize(zoom float64) coords.PixelSize {
	return coords.PixelSize{
		Width:  TileSize * WidthMultiplier * zoom,
		Height: TileSize * HeightMultiplier * zoom,
	}
}

// =============================================================================
// Transforms
// =============================================================================

// TileToScreen returns the pixel position of tile's origin anchor.
func TileToScreen(tile coords.Tile, zoom float64, scroll coords.Scroll, origin coords.Origin, viewport coords.PixelSize) (coords.Coords, error) {
	if err := validate(zoom, viewport); err != nil {
		return coords.Coords{}, err
	}
	if !origin.Valid() {
		return coords.Coords{}, errors.New(errors.ErrCodeInvalidOrigin, "unknown tile origin %d", int(origin))
	}
	return tileToScreen(tile, projectedTileSize(zoom), scroll, origin, viewport), nil
}

func tileToScreen(tile coords.Tile, size coords.PixelSize, scroll coords.Scroll, origin coords.Origin, viewport coords.PixelSize) coords.Coords {
	half := size.Half()
	tx, ty := float64(tile.X), float64(tile.Y)

	position := coords.Coords{
		X: viewport.Width*0.5 + (half.Width*tx - half.Width*ty) + scroll.Position.X,
		Y: viewport.Height*0.5 - (half.Height*tx + half.Height*ty) + scroll.Position.Y,
	}
	return position.Add(OriginOffset(origin, size))
}

// OriginOffset returns the delta from a diamond's centre to the given anchor
// for a tile of the given projected size.
func OriginOffset(origin coords.Origin, size coords.PixelSize) coords.Coords {
	half := size.Half()
	switch origin {
	case coords.OriginTop:
		return coords.Coords{X: 0, Y: -half.Height}
	case coords.OriginBottom:
		return coords.Coords{X: 0, Y: half.Height}
	case coords.OriginLeft:
		return coords.Coords{X: -half.Width, Y: 0}
	case coords.OriginRight:
		return coords.Coords{X: half.Width, Y: 0}
	default:
		return coords.Coords{}
	}
}

// ScreenToTile returns the tile whose diamond contains the pixel position mouse.
func ScreenToTile(mouse coords.Coords, zoom float64, scroll coords.Scroll, viewport coords.PixelSize) (coords.Tile, error) {
	if err := validate(zoom, viewport); err != nil {
		return coords.Tile{}, err
	}
	if err := errors.ValidateCoords(mouse.X, mouse.Y); err != nil {
		return coords.Tile{}, err
	}
	return screenToTile(mouse, projectedTileSize(zoom), scroll, viewport), nil
}

func screenToTile(mouse coords.Coords, size coords.PixelSize, scroll coords.Scroll, viewport coords.PixelSize) coords.Tile {
	half := size.Half()

	// Relative to the projection centre.
	p := coords.Coords{
		X: mouse.X - scroll.Position.X - viewport.Width*0.5,
		Y: mouse.Y - scroll.Position.Y - viewport.Height*0.5,
	}

	return coords.Tile{
		X: int(math.Floor((p.X+half.Width)/size.Width - p.Y/size.Height)),
		Y: -int(math.Floor((p.Y+half.Height)/size.Height + p.X/size.Width)),
	}
}

func validate(zoom float64, viewport coords.PixelSize) error {
	if err := errors.ValidateZoom(zoom); err != nil {
		return err
	}
	return errors.ValidateViewport(viewport.Width, viewport.Height)
}

// =============================================================================
// CSS Helpers
// =============================================================================

// IsoMatrixCSS returns the CSS matrix that lays an unprojected, top-down SVG
// onto the isometric plane. Renderers use it for connectors and tile areas
// that are drawn in unprojected space.
func IsoMatrixCSS() string {
	return "matrix(-0.707, 0.409, 0.707, 0.409, 0, -0.816)"
}

// TranslateCSS returns a CSS translate() for a pixel offset.
func TranslateCSS(c coords.Coords) string {
	return fmt.Sprintf("translate(%gpx, %gpx)", c.X, c.Y)
}
