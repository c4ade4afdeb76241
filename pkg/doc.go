// Package pkg provides the libraries of the isogrid isometric diagram toolkit.
//
// # Overview
//
// Isogrid converts between integer grid tiles and on-screen pixels for an
// isometric diagram editor and measures diagrams on that grid. The pkg
// directory is organized into three areas:
//
//  1. Geometry: [coords], [projection], [region], [diagram] and [connector]
//     are pure, allocation-light and safe for concurrent use.
//  2. Scene data: [scene] loads scene files and Tiled maps;
//     [render/snapshot] projects a scene for output.
//  3. Infrastructure: [cache], [pipeline], [api], [observability],
//     [buildinfo] and [errors].
//
// # Architecture
//
// The typical data flow:
//
//	scene file / Tiled map
//	         ↓
//	    [scene] package (nodes, groups, connectors)
//	         ↓
//	    [diagram] package (bounding box, fit to screen)
//	         ↓
//	    [render/snapshot] package (projected snapshot, DOT)
//	         ↓
//	    SVG/DOT/JSON/PNG/PDF output
//
// # Quick Start
//
// Project a tile and find it again:
//
//	p, _ := projection.New(1, coords.Scroll{}, coords.PixelSize{Width: 1280, Height: 720})
//	px := p.TileToScreen(coords.Tile{X: 2, Y: -1}, coords.OriginCenter)
//	tile, _ := p.ScreenToTile(px) // (2, -1)
//
// Fit a scene to the viewport:
//
//	s, _ := scene.ReadFile("office.toml")
//	fit, _ := diagram.FitToScreen(s.Positions(), view, diagram.FitOptions{ApplyZoom: true})
//	view = fit.View(view.Viewport)
//
// Run the cached pipeline used by the CLI and the API:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Execute(ctx, s, pipeline.Options{Fit: true, Formats: []string{"svg"}})
package pkg
