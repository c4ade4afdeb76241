package errors

import "math"

// ValidateZoom rejects zoom levels the projection cannot divide by.
// Zoom must be finite and strictly positive.
func ValidateZoom(zoom float64) error {
	if math.IsNaN(zoom) || math.IsInf(zoom, 0) {
		return New(ErrCodeInvalidZoom, "zoom must be finite, got %v", zoom)
	}
	if zoom <= 0 {
		return New(ErrCodeInvalidZoom, "zoom must be > 0, got %v", zoom)
	}
	return nil
}

// ValidateViewport checks a viewport's pixel dimensions.
// A zero viewport is accepted: projections degenerate to a pure translation.
func ValidateViewport(width, height float64) error {
	if !finite(width) || !finite(height) {
		return New(ErrCodeInvalidViewport, "viewport must be finite, got %vx%v", width, height)
	}
	if width < 0 || height < 0 {
		return New(ErrCodeInvalidViewport, "viewport cannot be negative, got %vx%v", width, height)
	}
	return nil
}

// ValidateCoords rejects NaN or infinite pixel coordinates, which would
// otherwise floor to arbitrary tiles.
func ValidateCoords(x, y float64) error {
	if !finite(x) || !finite(y) {
		return New(ErrCodeInvalidCoords, "coordinates must be finite, got (%v, %v)", x, y)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
