// Package projection converts between tile space and screen space.
//
// The grid is drawn as a 2.5D isometric projection: each tile is a diamond
// whose width and height are fixed multiples of an unprojected tile size, and
// both grid axes contribute to both screen axes:
//
//	screenX = viewportW/2 + halfW*(tile.X - tile.Y) + scroll.X
//	screenY = viewportH/2 - halfH*(tile.X + tile.Y) + scroll.Y
//
// where halfW and halfH are half of [ProjectedTileSize] at the current zoom.
// Tile (0, 0) therefore sits at the viewport centre when the scroll is zero,
// X grows up-right and Y grows up-left.
//
// # Inverse
//
// [ScreenToTile] inverts the rotation and floors to the diamond that contains
// the point, so for every integer tile t:
//
//	ScreenToTile(TileToScreen(t, zoom, scroll, OriginCenter, vp), zoom, scroll, vp) == t
//
// # Origins
//
// [TileToScreen] can anchor the returned point at the centre (default) or at
// the top, bottom, left or right vertex of the diamond. The vertex offsets
// are exactly half a projected tile.
//
// # Viewport
//
// The viewport size is always an explicit argument; nothing here reads the
// display. A zero viewport is valid and reduces the transform to rotation plus
// scroll.
//
// # Errors
//
// Zoom must be finite and > 0 ([errors.ErrCodeInvalidZoom]). Viewports must
// be finite and non-negative ([errors.ErrCodeInvalidViewport]). Pixel inputs
// to [ScreenToTile] must be finite ([errors.ErrCodeInvalidCoords]).
//
// # Concurrency
//
// Every function is pure. A [Projector] is an immutable value and may be
// shared between goroutines.
package projection
