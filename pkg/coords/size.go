package coords

import "fmt"

// Size is a non-negative extent.
type Size[N Number] struct {
	Width  N `json:"width" toml:"width"`
	Height N `json:"height" toml:"height"`
}

// GridSize counts tiles; bounding-box sizes are inclusive (high-low+1).
type GridSize = Size[int]

// PixelSize is a screen-space extent, e.g. a viewport or a projected tile.
type PixelSize = Size[float64]

// Half returns the size divided by two in each axis, as pixels.
func (s Size[N]) Half() PixelSize {
	return PixelSize{Width: float64(s.Width) / 2, Height: float64(s.Height) / 2}
}

// Center returns the pixel position at the middle of a region of this size
// anchored at the origin.
func (s Size[N]) Center() Coords {
	h := s.Half()
	return Coords{X: h.Width, Y: h.Height}
}

// Area returns Width*Height.
func (s Size[N]) Area() N {
	return s.Width * s.Height
}

// IsZero reports whether both dimensions are zero.
func (s Size[N]) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

func (s Size[N]) String() string {
	return fmt.Sprintf("%vx%v", s.Width, s.Height)
}

// Box is a pixel-space rectangle given by its top-left corner and size.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// TopLeft returns the box origin.
func (b Box) TopLeft() Coords {
	return Coords{X: b.X, Y: b.Y}
}

// Size returns the box extent.
func (b Box) Size() PixelSize {
	return PixelSize{Width: b.Width, Height: b.Height}
}

// Center returns the midpoint of the box.
func (b Box) Center() Coords {
	return Coords{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// IsZero reports whether b is the degenerate empty box.
func (b Box) IsZero() bool {
	return b == Box{}
}
