package diagram

import (
	"math"
	"testing"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/errors"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func nearCoords(a, b coords.Coords) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

var testView = View{Zoom: 1, Viewport: coords.PixelSize{Width: 1000, Height: 800}}

func TestBoundingBoxEmpty(t *testing.T) {
	for _, positions := range [][]coords.Tile{nil, {}} {
		box, err := BoundingBox(positions, testView)
		if err != nil {
			t.Fatalf("BoundingBox(empty) error: %v", err)
		}
		if !box.IsZero() {
			t.Errorf("BoundingBox(empty) = %+v, want zero box", box)
		}
	}
}

func TestBoundingBoxSingleTile(t *testing.T) {
	box, err := BoundingBox([]coords.Tile{{X: 0, Y: 0}}, testView)
	if err != nil {
		t.Fatalf("BoundingBox error: %v", err)
	}

	// Padded corners (-4,-4) (4,-4) (4,4) (-4,4) project to a diamond around
	// the viewport centre: 8 half-widths across and 8 half-heights down.
	want := coords.Box{X: -66, Y: 72.4, Width: 1132, Height: 655.2}
	if !near(box.X, want.X) || !near(box.Y, want.Y) || !near(box.Width, want.Width) || !near(box.Height, want.Height) {
		t.Errorf("BoundingBox = %+v, want %+v", box, want)
	}
	if !nearCoords(box.Center(), coords.Coords{X: 500, Y: 400}) {
		t.Errorf("box centre = %v, want (500, 400)", box.Center())
	}
}

func TestBoundingBoxFollowsScroll(t *testing.T) {
	positions := []coords.Tile{{X: 1, Y: 2}, {X: -3, Y: 0}}
	base, _ := BoundingBox(positions, testView)

	scrolled := testView
	scrolled.Scroll = coords.Scroll{Position: coords.Coords{X: 25, Y: -40}}
	moved, err := BoundingBox(positions, scrolled)
	if err != nil {
		t.Fatalf("BoundingBox error: %v", err)
	}

	if !near(moved.X, base.X+25) || !near(moved.Y, base.Y-40) {
		t.Errorf("scrolled top-left = (%v, %v), want (%v, %v)", moved.X, moved.Y, base.X+25, base.Y-40)
	}
	if !near(moved.Width, base.Width) || !near(moved.Height, base.Height) {
		t.Errorf("scrolled size = %vx%v, want %vx%v", moved.Width, moved.Height, base.Width, base.Height)
	}
}

func TestBoundingBoxScalesWithZoom(t *testing.T) {
	positions := []coords.Tile{{X: 0, Y: 0}, {X: 5, Y: 2}}
	one, _ := BoundingBox(positions, testView)

	doubled := testView
	doubled.Zoom = 2
	two, err := BoundingBox(positions, doubled)
	if err != nil {
		t.Fatalf("BoundingBox error: %v", err)
	}
	if !near(two.Width, 2*one.Width) || !near(two.Height, 2*one.Height) {
		t.Errorf("size at zoom 2 = %vx%v, want %vx%v", two.Width, two.Height, 2*one.Width, 2*one.Height)
	}
}

func TestBoundingBoxDoesNotMutate(t *testing.T) {
	positions := []coords.Tile{{X: 3, Y: 1}, {X: -2, Y: 5}, {X: 0, Y: 0}}
	want := append([]coords.Tile(nil), positions...)
	if _, err := BoundingBox(positions, testView); err != nil {
		t.Fatalf("BoundingBox error: %v", err)
	}
	for i := range positions {
		if positions[i] != want[i] {
			t.Fatalf("positions mutated: %v, want %v", positions, want)
		}
	}
}

func TestInvalidView(t *testing.T) {
	tests := []struct {
		name string
		view View
		code errors.Code
	}{
		{"zero zoom", View{Zoom: 0}, errors.ErrCodeInvalidZoom},
		{"negative zoom", View{Zoom: -1}, errors.ErrCodeInvalidZoom},
		{"NaN zoom", View{Zoom: math.NaN()}, errors.ErrCodeInvalidZoom},
		{"negative viewport", View{Zoom: 1, Viewport: coords.PixelSize{Width: -1}}, errors.ErrCodeInvalidViewport},
	}
	positions := []coords.Tile{{X: 0, Y: 0}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BoundingBox(positions, tt.view); !errors.Is(err, tt.code) {
				t.Errorf("BoundingBox error = %v, want %s", err, tt.code)
			}
			if _, err := FitToScreen(positions, tt.view, FitOptions{}); !errors.Is(err, tt.code) {
				t.Errorf("FitToScreen error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestFitToScreenCentres(t *testing.T) {
	positions := []coords.Tile{{X: 2, Y: 0}, {X: 6, Y: -3}, {X: 4, Y: 1}}
	view := testView
	view.Scroll = coords.Scroll{Position: coords.Coords{X: 300, Y: -120}, Offset: coords.Coords{X: 5, Y: 5}}

	fit, err := FitToScreen(positions, view, FitOptions{})
	if err != nil {
		t.Fatalf("FitToScreen error: %v", err)
	}
	if fit.Zoom != view.Zoom {
		t.Errorf("Zoom = %v, want unchanged %v", fit.Zoom, view.Zoom)
	}
	if !fit.Scroll.Offset.IsZero() {
		t.Errorf("Scroll.Offset = %v, want zero", fit.Scroll.Offset)
	}

	box, err := BoundingBox(positions, fit.View(view.Viewport))
	if err != nil {
		t.Fatalf("BoundingBox error: %v", err)
	}
	if !nearCoords(box.Center(), view.Viewport.Center()) {
		t.Errorf("fitted box centre = %v, want %v", box.Center(), view.Viewport.Center())
	}
}

func TestFitToScreenSingleTile(t *testing.T) {
	fit, err := FitToScreen([]coords.Tile{{X: 2, Y: 0}}, testView, FitOptions{})
	if err != nil {
		t.Fatalf("FitToScreen error: %v", err)
	}
	// Tile (2,0) is projected two half-widths right and two half-heights up.
	want := coords.Coords{X: -141.5, Y: 81.9}
	if !nearCoords(fit.Scroll.Position, want) {
		t.Errorf("Scroll.Position = %v, want %v", fit.Scroll.Position, want)
	}
	if !near(fit.ZoomRatio, 1000.0/1132.0) {
		t.Errorf("ZoomRatio = %v, want %v", fit.ZoomRatio, 1000.0/1132.0)
	}
}

func TestFitToScreenIdempotent(t *testing.T) {
	positions := []coords.Tile{{X: -4, Y: 7}, {X: 3, Y: 3}, {X: 10, Y: -2}}

	for _, opts := range []FitOptions{{}, {ApplyZoom: true}} {
		first, err := FitToScreen(positions, testView, opts)
		if err != nil {
			t.Fatalf("FitToScreen error: %v", err)
		}
		second, err := FitToScreen(positions, first.View(testView.Viewport), opts)
		if err != nil {
			t.Fatalf("FitToScreen error: %v", err)
		}

		if !nearCoords(first.Scroll.Position, second.Scroll.Position) {
			t.Errorf("ApplyZoom=%v: second scroll = %v, want %v", opts.ApplyZoom, second.Scroll.Position, first.Scroll.Position)
		}
		if !near(first.Zoom, second.Zoom) {
			t.Errorf("ApplyZoom=%v: second zoom = %v, want %v", opts.ApplyZoom, second.Zoom, first.Zoom)
		}
	}
}

func TestFitToScreenApplyZoom(t *testing.T) {
	positions := []coords.Tile{{X: 0, Y: 0}}

	fit, err := FitToScreen(positions, testView, FitOptions{ApplyZoom: true})
	if err != nil {
		t.Fatalf("FitToScreen error: %v", err)
	}
	if !near(fit.Zoom, fit.ZoomRatio) {
		t.Errorf("Zoom = %v, want ratio %v", fit.Zoom, fit.ZoomRatio)
	}

	box, _ := BoundingBox(positions, fit.View(testView.Viewport))
	if box.Width > testView.Viewport.Width*(1+eps) || box.Height > testView.Viewport.Height*(1+eps) {
		t.Errorf("fitted box %vx%v exceeds viewport %v", box.Width, box.Height, testView.Viewport)
	}
	if !near(box.Width, testView.Viewport.Width) && !near(box.Height, testView.Viewport.Height) {
		t.Errorf("fitted box %vx%v touches neither viewport edge", box.Width, box.Height)
	}
}

func TestFitToScreenClamp(t *testing.T) {
	positions := []coords.Tile{{X: 0, Y: 0}}

	tests := []struct {
		name string
		view View
		opts FitOptions
		want float64
	}{
		{
			name: "zero viewport clamps to min",
			view: View{Zoom: 1},
			opts: FitOptions{ApplyZoom: true, MinZoom: 0.25},
			want: 0.25,
		},
		{
			name: "large viewport clamps to max",
			view: View{Zoom: 1, Viewport: coords.PixelSize{Width: 1e6, Height: 1e6}},
			opts: FitOptions{ApplyZoom: true, MaxZoom: 3},
			want: 3,
		},
		{
			name: "defaults",
			view: View{Zoom: 1},
			opts: FitOptions{ApplyZoom: true},
			want: DefaultMinZoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, err := FitToScreen(positions, tt.view, tt.opts)
			if err != nil {
				t.Fatalf("FitToScreen error: %v", err)
			}
			if fit.Zoom != tt.want {
				t.Errorf("Zoom = %v, want %v", fit.Zoom, tt.want)
			}
		})
	}
}

func TestFitToScreenInvalidRange(t *testing.T) {
	_, err := FitToScreen([]coords.Tile{{}}, testView, FitOptions{MinZoom: 2, MaxZoom: 1})
	if !errors.Is(err, errors.ErrCodeInvalidZoom) {
		t.Errorf("error = %v, want %s", err, errors.ErrCodeInvalidZoom)
	}
}

func TestFitToScreenEmpty(t *testing.T) {
	view := testView
	view.Zoom = 1.5
	view.Scroll = coords.Scroll{Position: coords.Coords{X: 10, Y: 20}}

	fit, err := FitToScreen(nil, view, FitOptions{ApplyZoom: true})
	if err != nil {
		t.Fatalf("FitToScreen error: %v", err)
	}
	want := Fit{Zoom: 1.5, ZoomRatio: 1}
	if fit != want {
		t.Errorf("FitToScreen(empty) = %+v, want %+v", fit, want)
	}
}

type node struct{ pos coords.Tile }

func (n node) TilePosition() coords.Tile { return n.pos }

func TestPositions(t *testing.T) {
	got := Positions([]node{{coords.Tile{X: 1, Y: 2}}, {coords.Tile{X: 3, Y: 4}}})
	if len(got) != 2 || got[0] != (coords.Tile{X: 1, Y: 2}) || got[1] != (coords.Tile{X: 3, Y: 4}) {
		t.Errorf("Positions = %v", got)
	}
}
