package region

import (
	"github.com/matzehuels/isogrid/pkg/coords"
)

// Positioned is anything placed on a single tile, such as a scene node.
type Positioned interface {
	TilePosition() coords.Tile
}

// FilterByTile returns the items placed exactly on tile, in input order.
func FilterByTile[T Positioned](tile coords.Tile, items []T) []T {
	var out []T
	for _, item := range items {
		if item.TilePosition().Equal(tile) {
			out = append(out, item)
		}
	}
	return out
}

// SelectWithin returns the items whose position lies inside the rectangle
// spanned by bounds, in input order. Lasso selection uses the start and end
// tiles of the drag as bounds.
func SelectWithin[T Positioned](items []T, bounds []coords.Tile) ([]T, error) {
	e, err := SortExtremes(bounds)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, item := range items {
		p := item.TilePosition()
		if p.X >= e.LowX && p.X <= e.HighX && p.Y >= e.LowY && p.Y <= e.HighY {
			out = append(out, item)
		}
	}
	return out, nil
}

// Positions collects the tile of every item.
func Positions[T Positioned](items []T) []coords.Tile {
	out := make([]coords.Tile, len(items))
	for i, item := range items {
		out[i] = item.TilePosition()
	}
	return out
}
