package connector

import (
	"slices"
	"testing"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/errors"
	"github.com/matzehuels/isogrid/pkg/region"
	"github.com/matzehuels/isogrid/pkg/scene"
)

var (
	freeTile = coords.Tile{X: 3, Y: -2}

	testNodes = []scene.Node{{ID: "router", Position: coords.Tile{X: 0, Y: 0}}}

	testConnector = scene.Connector{
		ID:    "uplink",
		Width: 10,
		Style: scene.StyleDashed,
		Anchors: []scene.Anchor{
			{NodeID: "router"},
			{Tile: &freeTile},
		},
		Path: scene.ConnectorPath{
			Origin:   coords.Tile{X: 0, Y: -2},
			AreaSize: coords.GridSize{Width: 3, Height: 2},
			Tiles:    []coords.Tile{{X: 0, Y: 2}, {X: 3, Y: 0}},
		},
	}
)

func TestPathPoints(t *testing.T) {
	tests := []struct {
		zoom float64
		want []coords.Coords
	}{
		{1, []coords.Coords{{X: 50, Y: 250}, {X: 350, Y: 50}}},
		{2, []coords.Coords{{X: 100, Y: 500}, {X: 700, Y: 100}}},
		{0.5, []coords.Coords{{X: 25, Y: 125}, {X: 175, Y: 25}}},
	}
	for _, tt := range tests {
		got, err := PathPoints(testConnector.Path, tt.zoom)
		if err != nil {
			t.Fatalf("PathPoints error: %v", err)
		}
		if !slices.Equal(got, tt.want) {
			t.Errorf("PathPoints(zoom=%v) = %v, want %v", tt.zoom, got, tt.want)
		}
	}
}

func TestAnchorOffsets(t *testing.T) {
	got, err := AnchorOffsets(testConnector, testNodes, 1)
	if err != nil {
		t.Fatalf("AnchorOffsets error: %v", err)
	}
	// origin (0,-2) minus node (0,0) and minus free tile (3,-2), then centred.
	want := []coords.Coords{{X: 50, Y: -150}, {X: -250, Y: 50}}
	if !slices.Equal(got, want) {
		t.Errorf("AnchorOffsets = %v, want %v", got, want)
	}
}

func TestAnchorOffsetsMissingNode(t *testing.T) {
	_, err := AnchorOffsets(testConnector, nil, 1)
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeNotFound)
	}
}

func TestStrokeWidth(t *testing.T) {
	tests := []struct {
		width, zoom, want float64
	}{
		{10, 1, 10},
		{10, 0.5, 5},
		{4, 2, 8},
		{0, 1, 0},
	}
	for _, tt := range tests {
		got, err := StrokeWidth(tt.width, tt.zoom)
		if err != nil {
			t.Fatalf("StrokeWidth error: %v", err)
		}
		if got != tt.want {
			t.Errorf("StrokeWidth(%v, %v) = %v, want %v", tt.width, tt.zoom, got, tt.want)
		}
	}

	if _, err := StrokeWidth(-1, 1); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("StrokeWidth(-1) error = %v", err)
	}
	if _, err := StrokeWidth(1, 0); !errors.Is(err, errors.ErrCodeInvalidZoom) {
		t.Errorf("StrokeWidth(zoom 0) error = %v", err)
	}
}

func TestDashArray(t *testing.T) {
	tests := []struct {
		style scene.ConnectorStyle
		width float64
		want  string
	}{
		{scene.StyleSolid, 10, "none"},
		{"", 10, "none"},
		{scene.StyleDashed, 10, "20, 20"},
		{scene.StyleDotted, 10, "0, 18"},
		{scene.StyleDotted, 5, "0, 9"},
	}
	for _, tt := range tests {
		if got := DashArray(tt.style, tt.width); got != tt.want {
			t.Errorf("DashArray(%q, %v) = %q, want %q", tt.style, tt.width, got, tt.want)
		}
	}
}

func TestArea(t *testing.T) {
	want := region.Rect{From: coords.Tile{X: 0, Y: -2}, To: coords.Tile{X: 3, Y: 0}}
	if got := Area(testConnector.Path); got != want {
		t.Errorf("Area = %+v, want %+v", got, want)
	}
}

func TestBuild(t *testing.T) {
	g, err := Build(testConnector, testNodes, 1)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	width := 10.0
	if g.StrokeWidth != width || g.OutlineWidth != width*OutlineScale {
		t.Errorf("widths = %v/%v, want %v/%v", g.StrokeWidth, g.OutlineWidth, width, width*OutlineScale)
	}
	if g.DashArray != "20, 20" {
		t.Errorf("DashArray = %q", g.DashArray)
	}
	if len(g.Points) != 2 || len(g.Anchors) != 2 {
		t.Errorf("geometry = %+v", g)
	}
	if _, err := Build(testConnector, testNodes, -1); !errors.Is(err, errors.ErrCodeInvalidZoom) {
		t.Errorf("Build(zoom -1) error = %v", err)
	}

	negative := testConnector
	negative.Width = -2
	if _, err := Build(negative, testNodes, 1); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Build(width -2) error = %v, want %s", err, errors.ErrCodeInvalidInput)
	}
}

func TestPolyline(t *testing.T) {
	got := Polyline([]coords.Coords{{X: 50, Y: 250}, {X: 350.5, Y: 50}})
	if got != "50,250 350.5,50" {
		t.Errorf("Polyline = %q", got)
	}
	if Polyline(nil) != "" {
		t.Error("Polyline(nil) not empty")
	}
}
