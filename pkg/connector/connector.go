package connector

import (
	"fmt"
	"strings"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/errors"
	"github.com/matzehuels/isogrid/pkg/projection"
	"github.com/matzehuels/isogrid/pkg/region"
	"github.com/matzehuels/isogrid/pkg/scene"
)

// OutlineScale is the width of the light outline drawn under a connector,
// relative to its stroke width.
const OutlineScale = 1.4

// Geometry is the drawing data for one connector at one zoom level.
type Geometry struct {
	Area         region.Rect     `json:"area"`
	Points       []coords.Coords `json:"points"`
	Anchors      []coords.Coords `json:"anchors"`
	StrokeWidth  float64         `json:"stroke_width"`
	OutlineWidth float64         `json:"outline_width"`
	DashArray    string          `json:"dash_array"`
}

// Build computes the geometry of c. Node anchors are resolved against nodes.
func Build(c scene.Connector, nodes []scene.Node, zoom float64) (Geometry, error) {
	u, err := projection.UnprojectedTileSize(zoom)
	if err != nil {
		return Geometry{}, err
	}
	if err := validateWidth(c.Width); err != nil {
		return Geometry{}, err
	}
	anchors, err := anchorOffsets(c, nodes, u)
	if err != nil {
		return Geometry{}, err
	}
	width := strokeWidth(c.Width, u)
	return Geometry{
		Area:         Area(c.Path),
		Points:       pathPoints(c.Path, u),
		Anchors:      anchors,
		StrokeWidth:  width,
		OutlineWidth: width * OutlineScale,
		DashArray:    DashArray(c.Style, width),
	}, nil
}

// PathPoints returns the centre of every path tile in unprojected pixels.
func PathPoints(path scene.ConnectorPath, zoom float64) ([]coords.Coords, error) {
	u, err := projection.UnprojectedTileSize(zoom)
	if err != nil {
		return nil, err
	}
	return pathPoints(path, u), nil
}

func pathPoints(path scene.ConnectorPath, u float64) []coords.Coords {
	points := make([]coords.Coords, len(path.Tiles))
	for i, t := range path.Tiles {
		points[i] = tileCentre(t, u)
	}
	return points
}

// AnchorOffsets returns the marker position of every anchor of c, measured
// from the connector's area origin.
func AnchorOffsets(c scene.Connector, nodes []scene.Node, zoom float64) ([]coords.Coords, error) {
	u, err := projection.UnprojectedTileSize(zoom)
	if err != nil {
		return nil, err
	}
	return anchorOffsets(c, nodes, u)
}

func anchorOffsets(c scene.Connector, nodes []scene.Node, u float64) ([]coords.Coords, error) {
	offsets := make([]coords.Coords, len(c.Anchors))
	for i, a := range c.Anchors {
		pos, err := scene.AnchorPosition(a, nodes)
		if err != nil {
			return nil, err
		}
		offsets[i] = tileCentre(c.Path.Origin.Sub(pos), u)
	}
	return offsets, nil
}

func tileCentre(t coords.Tile, u float64) coords.Coords {
	return coords.Coords{X: float64(t.X)*u + u/2, Y: float64(t.Y)*u + u/2}
}

// StrokeWidth scales a connector width, given in hundredths of a tile, to pixels.
func StrokeWidth(width, zoom float64) (float64, error) {
	u, err := projection.UnprojectedTileSize(zoom)
	if err != nil {
		return 0, err
	}
	if err := validateWidth(width); err != nil {
		return 0, err
	}
	return strokeWidth(width, u), nil
}

func validateWidth(width float64) error {
	if width < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "connector width cannot be negative, got %v", width)
	}
	return nil
}

func strokeWidth(width, u float64) float64 {
	return u / 100 * width
}

// DashArray returns the SVG stroke-dasharray for style at the given stroke width.
func DashArray(style scene.ConnectorStyle, strokeWidth float64) string {
	switch style {
	case scene.StyleDashed:
		return fmt.Sprintf("%g, %g", strokeWidth*2, strokeWidth*2)
	case scene.StyleDotted:
		return fmt.Sprintf("0, %g", strokeWidth*1.8)
	default:
		return "none"
	}
}

// Area returns the tile rectangle a connector is drawn in.
func Area(path scene.ConnectorPath) region.Rect {
	return region.RectangleFromSize(path.Origin, path.AreaSize)
}

// Polyline formats points as an SVG points attribute.
func Polyline(points []coords.Coords) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%g,%g", p.X, p.Y)
	}
	return b.String()
}
