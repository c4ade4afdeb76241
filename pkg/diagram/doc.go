// Package diagram aggregates scene positions into screen-space geometry.
//
// The functions here sit one level above [projection] and [region]: they
// take the tile positions of every node in a diagram together with the
// current [View] and answer the questions an editor asks about the diagram as
// a whole.
//
// # Bounding Box
//
// [BoundingBox] pads the tile bounding box by [BoundingBoxPadding] tiles on
// every side, projects its four corners and returns the pixel rectangle that
// encloses them:
//
//	box, err := diagram.BoundingBox(positions, view)
//	// box.X, box.Y is the top-left corner, box.Width x box.Height the size
//
// An empty diagram has the zero [coords.Box].
//
// # Fit to Screen
//
// [FitToScreen] returns the scroll that centres the diagram in the viewport.
// The box is measured with zero scroll, so fitting an already fitted view
// returns the same scroll again.
//
// The ratio between viewport and box is always reported as [Fit.ZoomRatio].
// Zoom only changes when [FitOptions.ApplyZoom] is set, in which case the new
// zoom is the current zoom times the ratio, clamped to the configured range.
package diagram
