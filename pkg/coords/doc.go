// Package coords defines the value types shared by every isogrid package.
//
// Positions live in one of two spaces:
//
//   - Tile space: the integer grid a diagram is laid out on. Independent of
//     zoom and scroll. Represented by [Tile].
//   - Pixel space: the rendered view, dependent on zoom, scroll and viewport.
//     Represented by [Coords].
//
// Both are instantiations of the generic [Vec], so arithmetic is written once,
// but they are distinct Go types: passing a pixel position where a tile is
// expected is a compile error. Conversions are explicit ([Vec.Float],
// [Coords.Floor]).
//
// # Value Semantics
//
// All types are plain comparable structs. Two values are equal when their
// fields are equal, so a [Tile] can be used directly as a map key when
// deduplicating tile sets:
//
//	seen := map[coords.Tile]bool{}
//	seen[coords.Tile{X: 1, Y: 2}] = true
//
// Nothing in this package allocates or mutates its receivers.
package coords
