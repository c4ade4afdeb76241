// Package snapshot renders a projected view of a scene.
//
// # Overview
//
// [Project] runs every node, group tile and connector anchor of a
// [scene.Scene] through the isometric projection for one [diagram.View]. The
// resulting [Snapshot] is plain pixel geometry that can be encoded as JSON or
// drawn.
//
// [ToDOT] turns a snapshot into Graphviz DOT with every node pinned at its
// projected position, and [RenderSVG] lays it out with the neato engine,
// which keeps pinned nodes in place and only routes the connector edges:
//
//	snap, err := snapshot.Project(s, view)
//	dot := snapshot.ToDOT(snap, snapshot.Options{Labels: true})
//	svg, err := snapshot.RenderSVG(ctx, dot)
//
// # Coordinates
//
// Snapshot positions are screen pixels with Y pointing down. DOT positions
// are in points with Y pointing up, so [ToDOT] negates Y.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PNG and PDF conversion goes through [render.ToPNG] and
// [render.ToPDF], which require librsvg (rsvg-convert).
package snapshot
