package region

import (
	"cmp"
	"slices"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/errors"
)

// Pair holds one coordinate per sort axis.
type Pair[N coords.Number] struct {
	ByX coords.Vec[N]
	ByY coords.Vec[N]
}

// Extremes is a read-only summary of a coordinate set.
type Extremes[N coords.Number] struct {
	// ByX and ByY are stable sorted copies of the input.
	ByX []coords.Vec[N]
	ByY []coords.Vec[N]

	// Highest holds the last element of each ordering, Lowest the first.
	Highest Pair[N]
	Lowest  Pair[N]

	LowX, LowY   N
	HighX, HighY N
}

// SortExtremes orders pts by X and by Y and records the extreme values.
func SortExtremes[N coords.Number](pts []coords.Vec[N]) (Extremes[N], error) {
	if len(pts) == 0 {
		return Extremes[N]{}, errors.New(errors.ErrCodeEmptyInput, "at least one coordinate is required")
	}

	byX := slices.Clone(pts)
	byY := slices.Clone(pts)
	slices.SortStableFunc(byX, func(a, b coords.Vec[N]) int { return cmp.Compare(a.X, b.X) })
	slices.SortStableFunc(byY, func(a, b coords.Vec[N]) int { return cmp.Compare(a.Y, b.Y) })

	last := len(pts) - 1
	e := Extremes[N]{
		ByX:     byX,
		ByY:     byY,
		Highest: Pair[N]{ByX: byX[last], ByY: byY[last]},
		Lowest:  Pair[N]{ByX: byX[0], ByY: byY[0]},
	}
	e.LowX, e.HighX = e.Lowest.ByX.X, e.Highest.ByX.X
	e.LowY, e.HighY = e.Lowest.ByY.Y, e.Highest.ByY.Y
	return e, nil
}

// Low returns the minimum corner (LowX, LowY).
func (e Extremes[N]) Low() coords.Vec[N] {
	return coords.Vec[N]{X: e.LowX, Y: e.LowY}
}

// High returns the maximum corner (HighX, HighY).
func (e Extremes[N]) High() coords.Vec[N] {
	return coords.Vec[N]{X: e.HighX, Y: e.HighY}
}

// Span returns the exclusive extent HighX-LowX by HighY-LowY.
// Pixel-space callers use it; tile counts come from [BoundingBoxSize].
func (e Extremes[N]) Span() coords.Size[N] {
	return coords.Size[N]{Width: e.HighX - e.LowX, Height: e.HighY - e.LowY}
}
