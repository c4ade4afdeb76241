package diagram

import (
	"math"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/errors"
	"github.com/matzehuels/isogrid/pkg/projection"
	"github.com/matzehuels/isogrid/pkg/region"
)

// BoundingBoxPadding is the number of tiles added around the diagram on every
// side before it is projected.
const BoundingBoxPadding = 4

// Zoom range applied by [FitToScreen] when [FitOptions] leaves it unset.
const (
	DefaultMinZoom = 0.1
	DefaultMaxZoom = 4.0
)

// View is the camera state a diagram is seen through.
type View struct {
	Zoom     float64          `json:"zoom" toml:"zoom"`
	Scroll   coords.Scroll    `json:"scroll" toml:"scroll"`
	Viewport coords.PixelSize `json:"viewport" toml:"viewport"`
}

// Validate checks zoom and viewport.
func (v View) Validate() error {
	_, err := v.Projector()
	return err
}

// Projector returns a projector for this view.
func (v View) Projector() (projection.Projector, error) {
	return projection.New(v.Zoom, v.Scroll, v.Viewport)
}

// BoundingBox returns the pixel rectangle enclosing positions, padded by
// [BoundingBoxPadding] tiles and projected through view. Positions are read,
// never modified. An empty set yields the zero box.
func BoundingBox(positions []coords.Tile, view View) (coords.Box, error) {
	p, err := view.Projector()
	if err != nil {
		return coords.Box{}, err
	}
	if len(positions) == 0 {
		return coords.Box{}, nil
	}
	return boundingBox(positions, p)
}

func boundingBox(positions []coords.Tile, p projection.Projector) (coords.Box, error) {
	padding := coords.Tile{X: BoundingBoxPadding, Y: BoundingBoxPadding}
	corners, err := region.BoundingBox(positions, padding)
	if err != nil {
		return coords.Box{}, err
	}

	pixels := make([]coords.Coords, len(corners))
	for i, c := range corners {
		pixels[i] = p.TileToScreen(c, coords.OriginCenter)
	}

	e, err := region.SortExtremes(pixels)
	if err != nil {
		return coords.Box{}, err
	}
	span := e.Span()
	return coords.Box{X: e.LowX, Y: e.LowY, Width: span.Width, Height: span.Height}, nil
}

// =============================================================================
// Fit to Screen
// =============================================================================

// FitOptions controls [FitToScreen].
type FitOptions struct {
	// ApplyZoom scales the zoom by the fit ratio. Off by default: only the
	// scroll is changed.
	ApplyZoom bool `json:"apply_zoom" toml:"apply_zoom"`

	// MinZoom and MaxZoom clamp the applied zoom. Zero selects
	// DefaultMinZoom and DefaultMaxZoom.
	MinZoom float64 `json:"min_zoom" toml:"min_zoom"`
	MaxZoom float64 `json:"max_zoom" toml:"max_zoom"`
}

func (o FitOptions) withDefaults() (FitOptions, error) {
	if o.MinZoom == 0 {
		o.MinZoom = DefaultMinZoom
	}
	if o.MaxZoom == 0 {
		o.MaxZoom = DefaultMaxZoom
	}
	if err := errors.ValidateZoom(o.MinZoom); err != nil {
		return o, err
	}
	if err := errors.ValidateZoom(o.MaxZoom); err != nil {
		return o, err
	}
	if o.MinZoom > o.MaxZoom {
		return o, errors.New(errors.ErrCodeInvalidZoom, "min zoom %v exceeds max zoom %v", o.MinZoom, o.MaxZoom)
	}
	return o, nil
}

// Fit is the view state produced by [FitToScreen].
type Fit struct {
	Scroll coords.Scroll `json:"scroll"`
	Zoom   float64       `json:"zoom"`

	// ZoomRatio is min(viewport/box) per axis measured at the incoming zoom.
	// A value above 1 means the diagram could be enlarged.
	ZoomRatio float64 `json:"zoom_ratio"`
}

// View returns the fitted view for the given viewport.
func (f Fit) View(viewport coords.PixelSize) View {
	return View{Zoom: f.Zoom, Scroll: f.Scroll, Viewport: viewport}
}

// FitToScreen returns the scroll (and optionally zoom) that centres the
// diagram's bounding box in the viewport. The incoming scroll is ignored, so
// the result is idempotent.
//
// For an empty diagram the scroll is reset and zoom kept, with a ratio of 1.
func FitToScreen(positions []coords.Tile, view View, opts FitOptions) (Fit, error) {
	if err := view.Validate(); err != nil {
		return Fit{}, err
	}
	opts, err := opts.withDefaults()
	if err != nil {
		return Fit{}, err
	}
	if len(positions) == 0 {
		return Fit{Zoom: view.Zoom, ZoomRatio: 1}, nil
	}

	view.Scroll = coords.Scroll{}
	box, err := measure(positions, view)
	if err != nil {
		return Fit{}, err
	}
	ratio := zoomRatio(view.Viewport, box)

	zoom := view.Zoom
	if opts.ApplyZoom {
		zoom = clamp(zoom*ratio, opts.MinZoom, opts.MaxZoom)
		if zoom != view.Zoom {
			view.Zoom = zoom
			if box, err = measure(positions, view); err != nil {
				return Fit{}, err
			}
		}
	}

	center := view.Viewport.Center()
	return Fit{
		Scroll:    coords.Scroll{Position: center.Sub(box.Center())},
		Zoom:      zoom,
		ZoomRatio: ratio,
	}, nil
}

func measure(positions []coords.Tile, view View) (coords.Box, error) {
	p, err := view.Projector()
	if err != nil {
		return coords.Box{}, err
	}
	return boundingBox(positions, p)
}

// zoomRatio never divides by zero: padding keeps both box sides positive.
func zoomRatio(viewport coords.PixelSize, box coords.Box) float64 {
	return math.Min(viewport.Width/box.Width, viewport.Height/box.Height)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Positions collects the tile of every positioned item.
func Positions[T region.Positioned](items []T) []coords.Tile {
	return region.Positions(items)
}
