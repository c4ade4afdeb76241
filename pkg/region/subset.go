package region

import (
	"github.com/matzehuels/isogrid/pkg/coords"
)

// GridSubset returns every tile in the inclusive rectangle spanned by tiles.
// The outer loop walks X, the inner loop walks Y.
func GridSubset(tiles []coords.Tile) ([]coords.Tile, error) {
	e, err := SortExtremes(tiles)
	if err != nil {
		return nil, err
	}

	subset := make([]coords.Tile, 0, (e.HighX-e.LowX+1)*(e.HighY-e.LowY+1))
	for x := e.LowX; x <= e.HighX; x++ {
		for y := e.LowY; y <= e.HighY; y++ {
			subset = append(subset, coords.Tile{X: x, Y: y})
		}
	}
	return subset, nil
}

// Rect is a tile rectangle described by two opposite corners.
type Rect struct {
	From coords.Tile `json:"from" toml:"from"`
	To   coords.Tile `json:"to" toml:"to"`
}

// RectangleFromSize returns the rectangle starting at from and extending by size.
func RectangleFromSize(from coords.Tile, size coords.GridSize) Rect {
	return Rect{
		From: from,
		To:   coords.Tile{X: from.X + size.Width, Y: from.Y + size.Height},
	}
}

// Corners returns From and To as a slice for use with the other region functions.
func (r Rect) Corners() []coords.Tile {
	return []coords.Tile{r.From, r.To}
}

// Tiles enumerates every tile the rectangle covers.
func (r Rect) Tiles() []coords.Tile {
	tiles, _ := GridSubset(r.Corners())
	return tiles
}

// Size returns the inclusive tile count on each axis.
func (r Rect) Size() coords.GridSize {
	size, _ := BoundingBoxSize(r.Corners())
	return size
}

// Contains reports whether tile lies inside the rectangle.
func (r Rect) Contains(tile coords.Tile) bool {
	ok, _ := IsWithinBounds(tile, r.Corners())
	return ok
}
