// Package connector computes the drawing geometry of scene connectors.
//
// Connectors are drawn in unprojected space: a flat, top-down grid where one
// tile is [projection.UnprojectedTileSize] pixels square. A renderer draws the
// connector inside its area rectangle and lays the result onto the isometric
// plane with [projection.IsoMatrixCSS].
//
// [Build] returns everything needed to draw one connector:
//
//	g, err := connector.Build(c, scene.Nodes, zoom)
//	// g.Points       polyline vertices, tile centres
//	// g.Anchors      anchor markers relative to the area origin
//	// g.StrokeWidth  line width scaled with zoom
//	// g.DashArray    SVG stroke-dasharray for the connector style
package connector
