package region

import (
	"github.com/matzehuels/isogrid/pkg/coords"
)

// BoundingBox returns the corners of the rectangle enclosing pts, grown by
// padding on every side, in the order
//
//	[{lowX, lowY}, {highX, lowY}, {highX, highY}, {lowX, highY}]
func BoundingBox[N coords.Number](pts []coords.Vec[N], padding coords.Vec[N]) ([4]coords.Vec[N], error) {
	e, err := SortExtremes(pts)
	if err != nil {
		return [4]coords.Vec[N]{}, err
	}

	lowX, lowY := e.LowX-padding.X, e.LowY-padding.Y
	highX, highY := e.HighX+padding.X, e.HighY+padding.Y

	return [4]coords.Vec[N]{
		{X: lowX, Y: lowY},
		{X: highX, Y: lowY},
		{X: highX, Y: highY},
		{X: lowX, Y: highY},
	}, nil
}

// BoundingBoxSize returns the inclusive extent of pts: high-low+1 on each axis.
func BoundingBoxSize[N coords.Number](pts []coords.Vec[N]) (coords.Size[N], error) {
	e, err := SortExtremes(pts)
	if err != nil {
		return coords.Size[N]{}, err
	}
	return coords.Size[N]{
		Width:  e.HighX - e.LowX + 1,
		Height: e.HighY - e.LowY + 1,
	}, nil
}

// IsWithinBounds reports whether p lies inside the rectangle spanned by
// bounds. Both ends are inclusive.
func IsWithinBounds[N coords.Number](p coords.Vec[N], bounds []coords.Vec[N]) (bool, error) {
	e, err := SortExtremes(bounds)
	if err != nil {
		return false, err
	}
	return p.X >= e.LowX && p.X <= e.HighX && p.Y >= e.LowY && p.Y <= e.HighY, nil
}
