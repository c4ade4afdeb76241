// Package pipeline runs diagram geometry with caching for the CLI and the API.
//
// # Stages
//
// The pipeline has three stages, each usable on its own:
//
//  1. Bounds: the projected bounding box of the diagram's nodes
//  2. Fit: the view that centres (and optionally zooms) the diagram
//  3. Render: a projected snapshot encoded as SVG, DOT, JSON, PNG or PDF
//
// Every stage is memoized through a [cache.Cache] with keys derived from all
// inputs, so repeated requests for the same scene and view are served from
// the cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, s, pipeline.Options{
//	    Viewport: coords.PixelSize{Width: 1280, Height: 720},
//	    Fit:      true,
//	    Formats:  []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	box, err := runner.Bounds(ctx, positions, opts)
//	fit, err := runner.Fit(ctx, positions, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/isogrid/pkg/cache"
	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/diagram"
	"github.com/matzehuels/isogrid/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultZoom is the zoom used when none is given.
	DefaultZoom = 1.0

	// DefaultViewportWidth and DefaultViewportHeight size the viewport when
	// the caller does not know its screen.
	DefaultViewportWidth  = 1280.0
	DefaultViewportHeight = 720.0

	// DefaultPNGScale is the PNG resolution multiplier.
	DefaultPNGScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatDOT  = "dot"
	FormatJSON = "json"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatDOT:  true,
	FormatJSON: true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. It supports JSON for API requests.
type Options struct {
	// View options
	Zoom     float64          `json:"zoom,omitempty"`
	Scroll   coords.Scroll    `json:"scroll"`
	Viewport coords.PixelSize `json:"viewport"`

	// Fit options
	Fit       bool    `json:"fit,omitempty"` // Render with the fitted view instead of the given one
	ApplyZoom bool    `json:"apply_zoom,omitempty"`
	MinZoom   float64 `json:"min_zoom,omitempty"`
	MaxZoom   float64 `json:"max_zoom,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Labels   bool     `json:"labels,omitempty"`
	Groups   bool     `json:"groups,omitempty"`
	PNGScale float64  `json:"png_scale,omitempty"`

	// Refresh bypasses cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// SceneHash is the content hash of the input scene.
	SceneHash string

	// Box is the diagram bounding box under the requested view.
	Box coords.Box

	// Fit is the fitted view state.
	Fit diagram.Fit

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount      int
	ConnectorCount int
	BoundsTime     time.Duration
	FitTime        time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BoundsHit bool
	FitHit    bool
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, dot, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates every field.
// Calling it again has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateView(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetViewDefaults fills zoom, viewport and logger.
func (o *Options) SetViewDefaults() {
	if o.Zoom == 0 {
		o.Zoom = DefaultZoom
	}
	if o.Viewport.IsZero() {
		o.Viewport = coords.PixelSize{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateView sets view defaults and validates the view.
func (o *Options) ValidateView() error {
	o.SetViewDefaults()
	if err := o.View().Validate(); err != nil {
		return err
	}
	if _, err := diagram.FitToScreen(nil, o.View(), o.FitOptions()); err != nil {
		return fmt.Errorf("fit options: %w", err)
	}
	return nil
}

// SetRenderDefaults fills formats and PNG scale.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender sets defaults and validates the render options.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateView(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// View returns the requested view.
func (o *Options) View() diagram.View {
	return diagram.View{Zoom: o.Zoom, Scroll: o.Scroll, Viewport: o.Viewport}
}

// FitOptions returns the fit settings.
func (o *Options) FitOptions() diagram.FitOptions {
	return diagram.FitOptions{ApplyZoom: o.ApplyZoom, MinZoom: o.MinZoom, MaxZoom: o.MaxZoom}
}

// ViewKeyOpts returns cache key options for the view.
func (o *Options) ViewKeyOpts() cache.ViewKeyOpts {
	return cache.ViewKeyOpts{
		Zoom:     o.Zoom,
		Scroll:   o.Scroll,
		Viewport: o.Viewport,
	}
}

// FitKeyOpts returns cache key options for fit-to-screen. The scroll is not
// part of the key: fitting ignores it.
func (o *Options) FitKeyOpts() cache.FitKeyOpts {
	view := o.ViewKeyOpts()
	view.Scroll = coords.Scroll{}
	return cache.FitKeyOpts{
		ViewKeyOpts: view,
		ApplyZoom:   o.ApplyZoom,
		MinZoom:     o.MinZoom,
		MaxZoom:     o.MaxZoom,
	}
}

// SnapshotKeyOpts returns cache key options for one rendered format.
func (o *Options) SnapshotKeyOpts(view diagram.View, format string) cache.SnapshotKeyOpts {
	opts := cache.SnapshotKeyOpts{
		ViewKeyOpts: cache.ViewKeyOpts{
			Zoom:     view.Zoom,
			Scroll:   view.Scroll,
			Viewport: view.Viewport,
		},
		Format: format,
	}
	if o.Labels {
		opts.Variant += "labels;"
	}
	if o.Groups {
		opts.Variant += "groups;"
	}
	if format == FormatPNG {
		opts.Variant += fmt.Sprintf("scale=%g;", o.PNGScale)
	}
	return opts
}
