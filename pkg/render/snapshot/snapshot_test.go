package snapshot

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/diagram"
	"github.com/matzehuels/isogrid/pkg/errors"
	"github.com/matzehuels/isogrid/pkg/scene"
)

var testView = diagram.View{Zoom: 1, Viewport: coords.PixelSize{Width: 1000, Height: 800}}

func testScene() *scene.Scene {
	free := coords.Tile{X: 0, Y: 3}
	return &scene.Scene{
		Name: "lab",
		Nodes: []scene.Node{
			{ID: "a", Label: "Alpha", Position: coords.Tile{X: 0, Y: 0}},
			{ID: "b", Label: "Beta", Position: coords.Tile{X: 2, Y: 0}},
		},
		Groups: []scene.Group{{ID: "g", Tiles: []coords.Tile{{X: 0, Y: 0}, {X: 1, Y: 0}}}},
		Connectors: []scene.Connector{{
			ID:    "c",
			Width: 10,
			Style: scene.StyleDotted,
			Color: "#ff0000",
			Anchors: []scene.Anchor{
				{ID: "c1", NodeID: "a"},
				{ID: "c2", NodeID: "b"},
				{ID: "c3", Tile: &free},
			},
		}},
	}
}

func near(a, b coords.Coords) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestProject(t *testing.T) {
	snap, err := Project(testScene(), testView)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}

	if !near(snap.Nodes[0].Center, coords.Coords{X: 500, Y: 400}) {
		t.Errorf("node a centre = %v, want (500, 400)", snap.Nodes[0].Center)
	}
	if !near(snap.Nodes[1].Center, coords.Coords{X: 641.5, Y: 318.1}) {
		t.Errorf("node b centre = %v, want (641.5, 318.1)", snap.Nodes[1].Center)
	}
	top := snap.Nodes[0].Corners[0]
	if !near(top, coords.Coords{X: 500, Y: 400 - snap.TileSize.Height/2}) {
		t.Errorf("node a top corner = %v", top)
	}
	if snap.Box.IsZero() {
		t.Error("Box is zero for a non-empty scene")
	}

	if len(snap.Groups) != 1 || len(snap.Groups[0].Tiles) != 2 {
		t.Fatalf("groups = %+v", snap.Groups)
	}

	c := snap.Connectors[0]
	if c.StrokeWidth != 10 || c.DashArray != "0, 18" {
		t.Errorf("connector stroke = %v %q", c.StrokeWidth, c.DashArray)
	}
	if len(c.Endpoints) != 3 || c.Endpoints[2].NodeID != "" || c.Endpoints[2].Tile != (coords.Tile{X: 0, Y: 3}) {
		t.Errorf("endpoints = %+v", c.Endpoints)
	}
}

func TestProjectErrors(t *testing.T) {
	if _, err := Project(testScene(), diagram.View{Zoom: 0}); !errors.Is(err, errors.ErrCodeInvalidZoom) {
		t.Errorf("Project(zoom 0) error = %v", err)
	}

	s := testScene()
	s.Connectors[0].Anchors[0].NodeID = "ghost"
	if _, err := Project(s, testView); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Project(dangling anchor) error = %v", err)
	}
}

func TestProjectEmpty(t *testing.T) {
	snap, err := Project(&scene.Scene{}, testView)
	if err != nil {
		t.Fatalf("Project error: %v", err)
	}
	if !snap.Box.IsZero() || len(snap.Nodes) != 0 {
		t.Errorf("empty snapshot = %+v", snap)
	}
}

func TestToDOT(t *testing.T) {
	snap, _ := Project(testScene(), testView)
	dot := ToDOT(snap, Options{})

	for _, want := range []string{
		"graph G {",
		"inputscale=72",
		`"a" [label="a", pos="500.00,-400.00!"]`,
		`"b" [label="b", pos="641.50,-318.10!"]`,
		`"a" -- "b"`,
		`"b" -- "c#2"`,
		`"c#2" [shape=point`,
		"style=dotted",
		`color="#ff0000"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT output missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "shape=diamond") {
		t.Error("ToDOT drew groups without Options.Groups")
	}
}

func TestToDOTOptions(t *testing.T) {
	snap, _ := Project(testScene(), testView)
	dot := ToDOT(snap, Options{Labels: true, Groups: true})

	if !strings.Contains(dot, `label="Alpha"`) {
		t.Error("ToDOT with Labels missing node label")
	}
	if strings.Count(dot, "shape=diamond") != 2 {
		t.Errorf("ToDOT with Groups drew %d diamonds, want 2", strings.Count(dot, "shape=diamond"))
	}
}

func TestRenderSVG(t *testing.T) {
	snap, _ := Project(testScene(), testView)
	svg, err := RenderSVG(context.Background(), ToDOT(snap, Options{Labels: true}))
	if err != nil {
		t.Fatalf("RenderSVG error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("RenderSVG output missing <svg> tag")
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "graph { invalid syntax"); err == nil {
		t.Error("RenderSVG accepted invalid DOT")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg>")); string(got) != "<svg>" {
		t.Errorf("normalizeViewBox without viewBox = %s", got)
	}
}
