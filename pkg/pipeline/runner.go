package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/isogrid/pkg/cache"
	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/diagram"
	"github.com/matzehuels/isogrid/pkg/errors"
	"github.com/matzehuels/isogrid/pkg/observability"
	"github.com/matzehuels/isogrid/pkg/scene"
)

// Cache key types reported to observability hooks.
const (
	keyTypeBounds   = "bounds"
	keyTypeFit      = "fit"
	keyTypeSnapshot = "snapshot"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so the caching logic lives in one place.
//
// The Runner holds no pipeline results. Multiple goroutines can use the
// same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If logger is nil, log output is discarded.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs bounds, fit and render for s with caching.
func (r *Runner) Execute(ctx context.Context, s *scene.Scene, opts Options) (*Result, error) {
	if s == nil {
		return nil, errors.New(errors.ErrCodeEmptyInput, "no scene given")
	}
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
		Stats: Stats{
			NodeCount:      len(s.Nodes),
			ConnectorCount: len(s.Connectors),
		},
	}
	positions := s.Positions()

	// Stage 1: Bounds
	boundsStart := time.Now()
	box, boundsHit, err := r.BoundsWithCacheInfo(ctx, positions, opts)
	if err != nil {
		return nil, fmt.Errorf("bounds: %w", err)
	}
	result.Box = box
	result.Stats.BoundsTime = time.Since(boundsStart)
	result.CacheInfo.BoundsHit = boundsHit

	r.Logger.Info("computed bounds",
		"nodes", len(positions),
		"box", fmt.Sprintf("%.1fx%.1f", box.Width, box.Height),
		"duration", result.Stats.BoundsTime)

	// Stage 2: Fit
	fitStart := time.Now()
	fit, fitHit, err := r.FitWithCacheInfo(ctx, positions, opts)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}
	result.Fit = fit
	result.Stats.FitTime = time.Since(fitStart)
	result.CacheInfo.FitHit = fitHit

	r.Logger.Info("fitted view",
		"zoom", fit.Zoom,
		"ratio", fit.ZoomRatio,
		"duration", result.Stats.FitTime)

	// Stage 3: Render
	view := opts.View()
	if opts.Fit {
		view = fit.View(opts.Viewport)
	}
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, s, view, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	if hash, err := cache.HashJSON(s); err == nil {
		result.SceneHash = hash
	}

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BoundsWithCacheInfo computes the diagram bounding box with caching and
// reports whether it was a cache hit.
func (r *Runner) BoundsWithCacheInfo(ctx context.Context, positions []coords.Tile, opts Options) (coords.Box, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateView(); err != nil {
		return coords.Box{}, false, err
	}
	hooks := observability.Pipeline()
	hooks.OnBoundsStart(ctx, len(positions))
	start := time.Now()

	cacheKey := r.Keyer.BoundsKey(cache.HashTiles(positions), opts.ViewKeyOpts())
	var box coords.Box
	if r.lookup(ctx, cacheKey, keyTypeBounds, opts, &box) {
		hooks.OnBoundsComplete(ctx, len(positions), time.Since(start), nil)
		return box, true, nil
	}

	box, err := diagram.BoundingBox(positions, opts.View())
	hooks.OnBoundsComplete(ctx, len(positions), time.Since(start), err)
	if err != nil {
		return coords.Box{}, false, err
	}
	r.store(ctx, cacheKey, keyTypeBounds, box, cache.TTLGeometry)
	return box, false, nil
}

// Bounds is a convenience wrapper that calls BoundsWithCacheInfo and discards the cache hit info.
func (r *Runner) Bounds(ctx context.Context, positions []coords.Tile, opts Options) (coords.Box, error) {
	box, _, err := r.BoundsWithCacheInfo(ctx, positions, opts)
	return box, err
}

// FitWithCacheInfo computes the fitted view with caching and reports whether
// it was a cache hit.
func (r *Runner) FitWithCacheInfo(ctx context.Context, positions []coords.Tile, opts Options) (diagram.Fit, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateView(); err != nil {
		return diagram.Fit{}, false, err
	}
	hooks := observability.Pipeline()
	hooks.OnFitStart(ctx, len(positions))
	start := time.Now()

	cacheKey := r.Keyer.FitKey(cache.HashTiles(positions), opts.FitKeyOpts())
	var fit diagram.Fit
	if r.lookup(ctx, cacheKey, keyTypeFit, opts, &fit) {
		hooks.OnFitComplete(ctx, len(positions), time.Since(start), nil)
		return fit, true, nil
	}

	fit, err := diagram.FitToScreen(positions, opts.View(), opts.FitOptions())
	hooks.OnFitComplete(ctx, len(positions), time.Since(start), err)
	if err != nil {
		return diagram.Fit{}, false, err
	}
	r.store(ctx, cacheKey, keyTypeFit, fit, cache.TTLGeometry)
	return fit, false, nil
}

// Fit is a convenience wrapper that calls FitWithCacheInfo and discards the cache hit info.
func (r *Runner) Fit(ctx context.Context, positions []coords.Tile, opts Options) (diagram.Fit, error) {
	fit, _, err := r.FitWithCacheInfo(ctx, positions, opts)
	return fit, err
}

// RenderWithCacheInfo renders s through view in every requested format. The
// hit flag is true only when all formats came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s *scene.Scene, view diagram.View, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	if err := view.Validate(); err != nil {
		return nil, false, err
	}

	sceneHash, err := cache.HashJSON(s)
	if err != nil {
		return nil, false, fmt.Errorf("hash scene for cache key: %w", err)
	}

	artifacts := make(map[string][]byte)
	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.SnapshotKey(sceneHash, opts.SnapshotKeyOpts(view, format))
			data, hit, err := r.Cache.Get(ctx, cacheKey)
			if err != nil || !hit {
				observability.Cache().OnCacheMiss(ctx, keyTypeSnapshot)
				break
			}
			observability.Cache().OnCacheHit(ctx, keyTypeSnapshot)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	rendered, err := RenderScene(ctx, s, view, opts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		cacheKey := r.Keyer.SnapshotKey(sceneHash, opts.SnapshotKeyOpts(view, format))
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLSnapshot); err != nil {
			opts.Logger.Debug("cache write failed", "key", cacheKey, "err", err)
			continue
		}
		observability.Cache().OnCacheSet(ctx, keyTypeSnapshot, len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, s *scene.Scene, view diagram.View, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, s, view, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup decodes a cached JSON value into dst. Undecodable entries count
// as misses so the value is recomputed.
func (r *Runner) lookup(ctx context.Context, key, keyType string, opts Options, dst any) bool {
	if opts.Refresh {
		return false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		opts.Logger.Debug("cache read failed", "key", key, "err", err)
	}
	if err != nil || !hit || json.Unmarshal(data, dst) != nil {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return true
}

func (r *Runner) store(ctx context.Context, key, keyType string, v any, ttl time.Duration) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache write failed", "key", key, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
