package coords

import (
	"fmt"
	"math"
)

// Number is the set of scalar types a [Vec] or [Size] can hold.
type Number interface {
	~int | ~float64
}

// Vec is a 2D coordinate. The space it lives in is carried by its type
// parameter: see [Tile] and [Coords].
type Vec[N Number] struct {
	X N `json:"x" toml:"x"`
	Y N `json:"y" toml:"y"`
}

// Tile is a position on the integer diagram grid.
type Tile = Vec[int]

// Coords is a position in screen pixels.
type Coords = Vec[float64]

// Zero returns the origin of the space.
func Zero[N Number]() Vec[N] {
	return Vec[N]{}
}

// Add returns v+o componentwise.
func (v Vec[N]) Add(o Vec[N]) Vec[N] {
	return Vec[N]{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o componentwise.
func (v Vec[N]) Sub(o Vec[N]) Vec[N] {
	return Vec[N]{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by k.
func (v Vec[N]) Scale(k N) Vec[N] {
	return Vec[N]{X: v.X * k, Y: v.Y * k}
}

// Equal reports exact componentwise equality. There is no epsilon: tiles are
// integers and pixel values are deterministic sums of the same inputs.
func (v Vec[N]) Equal(o Vec[N]) bool {
	return v == o
}

// IsZero reports whether v is the origin.
func (v Vec[N]) IsZero() bool {
	return v == Vec[N]{}
}

// Float converts v to pixel-space precision without changing its value.
func (v Vec[N]) Float() Coords {
	return Coords{X: float64(v.X), Y: float64(v.Y)}
}

func (v Vec[N]) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Floor truncates a pixel-space value toward negative infinity.
// It is a free function because methods cannot be specialised per instantiation.
func Floor(c Coords) Tile {
	return Tile{X: int(math.Floor(c.X)), Y: int(math.Floor(c.Y))}
}
