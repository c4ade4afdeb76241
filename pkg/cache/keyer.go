package cache

import (
	"github.com/matzehuels/isogrid/pkg/coords"
)

// ViewKeyOpts is the view state a geometry result depends on.
type ViewKeyOpts struct {
	Zoom     float64          `json:"zoom"`
	Scroll   coords.Scroll    `json:"scroll"`
	Viewport coords.PixelSize `json:"viewport"`
}

// FitKeyOpts extends ViewKeyOpts with the fit settings.
type FitKeyOpts struct {
	ViewKeyOpts
	ApplyZoom bool    `json:"apply_zoom"`
	MinZoom   float64 `json:"min_zoom"`
	MaxZoom   float64 `json:"max_zoom"`
}

// SnapshotKeyOpts identifies a rendered snapshot of a scene.
type SnapshotKeyOpts struct {
	ViewKeyOpts
	Format string `json:"format"`
	// Variant encodes render flags that change the output bytes.
	Variant string `json:"variant"`
}

// Keyer derives cache keys. Every key includes a hash of all inputs.
type Keyer interface {
	// BoundsKey keys a diagram bounding box.
	BoundsKey(tilesHash string, opts ViewKeyOpts) string

	// FitKey keys a fit-to-screen result.
	FitKey(tilesHash string, opts FitKeyOpts) string

	// SnapshotKey keys a rendered scene.
	SnapshotKey(sceneHash string, opts SnapshotKeyOpts) string
}

// DefaultKeyer is the standard key layout: "<kind>:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// BoundsKey implements [Keyer].
func (DefaultKeyer) BoundsKey(tilesHash string, opts ViewKeyOpts) string {
	return hashKey("bounds", tilesHash, opts)
}

// FitKey implements [Keyer].
func (DefaultKeyer) FitKey(tilesHash string, opts FitKeyOpts) string {
	return hashKey("fit", tilesHash, opts)
}

// SnapshotKey implements [Keyer].
func (DefaultKeyer) SnapshotKey(sceneHash string, opts SnapshotKeyOpts) string {
	return hashKey("snapshot", sceneHash, opts)
}
