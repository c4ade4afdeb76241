package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/diagram"
	"github.com/matzehuels/isogrid/pkg/errors"
	"github.com/matzehuels/isogrid/pkg/pipeline"
	"github.com/matzehuels/isogrid/pkg/projection"
	"github.com/matzehuels/isogrid/pkg/region"
	"github.com/matzehuels/isogrid/pkg/scene"
)

// =============================================================================
// Request and Response Types
// =============================================================================

// View is the view state of a request. Omitted fields take the pipeline
// defaults; an explicit zoom is validated as given, so "zoom": 0 is rejected.
type View struct {
	Zoom     *float64         `json:"zoom,omitempty"`
	Scroll   coords.Scroll    `json:"scroll"`
	Viewport coords.PixelSize `json:"viewport"`
}

// NewView converts a diagram view into a request view with an explicit zoom.
func NewView(v diagram.View) View {
	zoom := v.Zoom
	return View{Zoom: &zoom, Scroll: v.Scroll, Viewport: v.Viewport}
}

// ProjectRequest asks for the screen position of each tile.
type ProjectRequest struct {
	Tiles  []coords.Tile `json:"tiles"`
	Origin coords.Origin `json:"origin"`
	View   View          `json:"view"`
}

// ProjectResponse lists screen positions in request order.
type ProjectResponse struct {
	Points []coords.Coords `json:"points"`
}

// LocateRequest asks for the tile under each screen point.
type LocateRequest struct {
	Points []coords.Coords `json:"points"`
	View   View            `json:"view"`
}

// LocateResponse lists tiles in request order.
type LocateResponse struct {
	Tiles []coords.Tile `json:"tiles"`
}

// BoundsRequest asks for the bounding box of a diagram.
type BoundsRequest struct {
	Tiles []coords.Tile `json:"tiles"`
	View  View          `json:"view"`
}

// BoundsResponse carries the projected bounding box.
type BoundsResponse struct {
	Box    coords.Box `json:"box"`
	Cached bool       `json:"cached"`
}

// FitRequest asks for the view that fits a diagram to the viewport.
type FitRequest struct {
	Tiles     []coords.Tile `json:"tiles"`
	View      View          `json:"view"`
	ApplyZoom bool          `json:"apply_zoom"`
	MinZoom   float64       `json:"min_zoom"`
	MaxZoom   float64       `json:"max_zoom"`
}

// FitResponse carries the fitted view.
type FitResponse struct {
	diagram.Fit
	Cached bool `json:"cached"`
}

// SubsetRequest asks for every tile between two corners.
type SubsetRequest struct {
	From coords.Tile `json:"from"`
	To   coords.Tile `json:"to"`
}

// SubsetResponse lists the tiles x-major.
type SubsetResponse struct {
	Tiles []coords.Tile   `json:"tiles"`
	Size  coords.GridSize `json:"size"`
}

// RenderRequest renders a scene. Scene uses the JSON scene format.
type RenderRequest struct {
	Scene   json.RawMessage  `json:"scene"`
	Options pipeline.Options `json:"options"`
}

// RenderResponse carries the pipeline result. Artifacts are base64 encoded.
type RenderResponse struct {
	SceneHash string             `json:"scene_hash"`
	Box       coords.Box         `json:"box"`
	Fit       diagram.Fit        `json:"fit"`
	Artifacts map[string][]byte  `json:"artifacts"`
	CacheInfo pipeline.CacheInfo `json:"cache_info"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if !req.Origin.Valid() {
		s.writeError(w, r, errors.New(errors.ErrCodeInvalidOrigin, "invalid origin %d", req.Origin))
		return
	}
	p, err := projector(req.View)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := ProjectResponse{Points: make([]coords.Coords, len(req.Tiles))}
	for i, t := range req.Tiles {
		resp.Points[i] = p.TileToScreen(t, req.Origin)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLocate(w http.ResponseWriter, r *http.Request) {
	var req LocateRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	p, err := projector(req.View)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := LocateResponse{Tiles: make([]coords.Tile, len(req.Points))}
	for i, pt := range req.Points {
		if resp.Tiles[i], err = p.ScreenToTile(pt); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBounds(w http.ResponseWriter, r *http.Request) {
	var req BoundsRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := viewOptions(req.View)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	box, hit, err := s.runner.BoundsWithCacheInfo(r.Context(), req.Tiles, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, BoundsResponse{Box: box, Cached: hit})
}

func (s *Server) handleFit(w http.ResponseWriter, r *http.Request) {
	var req FitRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := viewOptions(req.View)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.ApplyZoom = req.ApplyZoom
	opts.MinZoom = req.MinZoom
	opts.MaxZoom = req.MaxZoom

	fit, hit, err := s.runner.FitWithCacheInfo(r.Context(), req.Tiles, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, FitResponse{Fit: fit, Cached: hit})
}

func (s *Server) handleSubset(w http.ResponseWriter, r *http.Request) {
	var req SubsetRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	corners := []coords.Tile{req.From, req.To}
	tiles, err := region.GridSubset(corners)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	size, err := region.BoundingBoxSize(corners)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, SubsetResponse{Tiles: tiles, Size: size})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req RenderRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(req.Scene) == 0 {
		s.writeError(w, r, errors.New(errors.ErrCodeEmptyInput, "no scene given"))
		return
	}
	sc, err := scene.Read(bytes.NewReader(req.Scene), scene.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts := req.Options
	opts.Logger = s.logger
	if sc.View != nil && opts.Zoom == 0 && opts.Viewport.IsZero() {
		opts.Zoom, opts.Scroll, opts.Viewport = sc.View.Zoom, sc.View.Scroll, sc.View.Viewport
	}

	result, err := s.runner.Execute(r.Context(), sc, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, RenderResponse{
		SceneHash: result.SceneHash,
		Box:       result.Box,
		Fit:       result.Fit,
		Artifacts: result.Artifacts,
		CacheInfo: result.CacheInfo,
	})
}

// =============================================================================
// Helpers
// =============================================================================

// viewOptions converts a request view into pipeline options so that HTTP
// requests share the CLI defaults.
func viewOptions(v View) (pipeline.Options, error) {
	opts := pipeline.Options{Scroll: v.Scroll, Viewport: v.Viewport}
	if v.Zoom != nil {
		if err := errors.ValidateZoom(*v.Zoom); err != nil {
			return opts, err
		}
		opts.Zoom = *v.Zoom
	}
	return opts, nil
}

func projector(v View) (projection.Projector, error) {
	opts, err := viewOptions(v)
	if err != nil {
		return projection.Projector{}, err
	}
	if err := opts.ValidateView(); err != nil {
		return projection.Projector{}, err
	}
	return opts.View().Projector()
}
