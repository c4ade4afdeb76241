// Package region computes bounding boxes and tile subsets over sets of coordinates.
//
// Functions are generic over [coords.Vec], so the same code summarises tile
// sets (scene node positions) and pixel sets (projected corners). Everything
// here works on copies: input slices are never reordered or modified.
//
// # Extremes
//
// [SortExtremes] is the building block. It returns both orderings of the
// input and the low/high value on each axis:
//
//	ext, err := region.SortExtremes(tiles)
//	// ext.LowX, ext.HighX, ext.LowY, ext.HighY
//
// # Bounding Boxes
//
// [BoundingBox] returns four corners in a fixed order (low/low, high/low,
// high/high, low/high), optionally grown by a padding. Renderers consume the
// corners as an ordered polygon, so the order is part of the contract.
//
// [BoundingBoxSize] counts tiles inclusively: a single tile has size 1x1.
//
// # Subsets
//
// [GridSubset] enumerates every tile of the rectangle spanned by a set,
// x-major: the outer loop walks X from low to high and the inner loop walks Y.
//
// # Errors
//
// Functions that need at least one coordinate return
// [errors.ErrCodeEmptyInput] for an empty slice instead of inventing a value.
package region
