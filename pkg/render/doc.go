// Package render converts rendered SVG to raster and print formats.
//
// Scene rendering lives in the [snapshot] subpackage, which produces SVG via
// Graphviz. [ToPNG] and [ToPDF] convert that SVG with the external
// rsvg-convert tool from librsvg:
//
//	svg, err := snapshot.RenderSVG(ctx, dot)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//	pdf, err := render.ToPDF(ctx, svg)
//
// [snapshot]: github.com/matzehuels/isogrid/pkg/render/snapshot
package render
