package coords

import (
	"encoding/json"
	"testing"
)

func TestVecArithmetic(t *testing.T) {
	a := Tile{X: 3, Y: -2}
	b := Tile{X: 1, Y: 5}

	if got := a.Add(b); got != (Tile{X: 4, Y: 3}) {
		t.Errorf("Add = %v, want (4, 3)", got)
	}
	if got := a.Sub(b); got != (Tile{X: 2, Y: -7}) {
		t.Errorf("Sub = %v, want (2, -7)", got)
	}
	if got := a.Scale(2); got != (Tile{X: 6, Y: -4}) {
		t.Errorf("Scale = %v, want (6, -4)", got)
	}
	if got := a.Add(b).Sub(b); !got.Equal(a) {
		t.Errorf("Add then Sub = %v, want %v", got, a)
	}
}

func TestZero(t *testing.T) {
	if z := Zero[int](); !z.IsZero() || z != (Tile{}) {
		t.Errorf("Zero[int]() = %v, want (0, 0)", z)
	}
	if z := Zero[float64](); z != (Coords{}) {
		t.Errorf("Zero[float64]() = %v, want (0, 0)", z)
	}
	if (Tile{X: 1}).IsZero() {
		t.Error("(1, 0).IsZero() = true, want false")
	}
}

func TestEqualIsExact(t *testing.T) {
	// Runtime float64 addition; a constant expression would fold to exactly 0.3.
	x, y := 0.1, 0.2
	a := Coords{X: x + y, Y: 1}
	b := Coords{X: 0.3, Y: 1}
	if a.Equal(b) {
		t.Error("Equal should not apply an epsilon")
	}
	if !a.Equal(a) {
		t.Error("Equal should be reflexive")
	}
}

func TestTileAsMapKey(t *testing.T) {
	seen := map[Tile]int{}
	for _, tile := range []Tile{{1, 2}, {1, 2}, {2, 1}, {1, 2}} {
		seen[tile]++
	}
	if len(seen) != 2 {
		t.Fatalf("unique tiles = %d, want 2", len(seen))
	}
	if seen[Tile{X: 1, Y: 2}] != 3 {
		t.Errorf("count (1, 2) = %d, want 3", seen[Tile{X: 1, Y: 2}])
	}
}

func TestFloatAndFloor(t *testing.T) {
	tile := Tile{X: -3, Y: 7}
	if got := tile.Float(); got != (Coords{X: -3, Y: 7}) {
		t.Errorf("Float = %v, want (-3, 7)", got)
	}

	tests := []struct {
		in   Coords
		want Tile
	}{
		{Coords{X: 1.9, Y: 2.1}, Tile{X: 1, Y: 2}},
		{Coords{X: -0.1, Y: -1.5}, Tile{X: -1, Y: -2}},
		{Coords{X: 4, Y: -4}, Tile{X: 4, Y: -4}},
	}
	for _, tt := range tests {
		if got := Floor(tt.in); got != tt.want {
			t.Errorf("Floor(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSize(t *testing.T) {
	s := GridSize{Width: 3, Height: 4}
	if s.Area() != 12 {
		t.Errorf("Area = %d, want 12", s.Area())
	}
	if got := s.Half(); got != (PixelSize{Width: 1.5, Height: 2}) {
		t.Errorf("Half = %v, want 1.5x2", got)
	}
	vp := PixelSize{Width: 1280, Height: 720}
	if got := vp.Center(); got != (Coords{X: 640, Y: 360}) {
		t.Errorf("Center = %v, want (640, 360)", got)
	}
	if !(PixelSize{}).IsZero() {
		t.Error("zero PixelSize.IsZero() = false")
	}
}

func TestBox(t *testing.T) {
	b := Box{X: 10, Y: 20, Width: 100, Height: 50}
	if got := b.Center(); got != (Coords{X: 60, Y: 45}) {
		t.Errorf("Center = %v, want (60, 45)", got)
	}
	if got := b.TopLeft(); got != (Coords{X: 10, Y: 20}) {
		t.Errorf("TopLeft = %v, want (10, 20)", got)
	}
	if b.IsZero() || !(Box{}).IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestScroll(t *testing.T) {
	s := Scroll{Offset: Coords{X: 5, Y: -5}, Position: Coords{X: 100, Y: 100}}
	c := s.Commit()
	if c.Position != (Coords{X: 105, Y: 95}) || !c.Offset.IsZero() {
		t.Errorf("Commit = %+v", c)
	}
	p := s.Pan(Coords{X: -100, Y: 0})
	if p.Position != (Coords{X: 0, Y: 100}) || p.Offset != s.Offset {
		t.Errorf("Pan = %+v", p)
	}
}

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		in      string
		want    Origin
		wantErr bool
	}{
		{"", OriginCenter, false},
		{"center", OriginCenter, false},
		{"TOP", OriginTop, false},
		{"bottom", OriginBottom, false},
		{"Left", OriginLeft, false},
		{"right", OriginRight, false},
		{"middle", OriginCenter, true},
	}

	for _, tt := range tests {
		got, err := ParseOrigin(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOrigin(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOrigin(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOriginString(t *testing.T) {
	for _, o := range Origins {
		back, err := ParseOrigin(o.String())
		if err != nil || back != o {
			t.Errorf("ParseOrigin(%q) = %v, %v", o.String(), back, err)
		}
	}
	if got := Origin(42).String(); got != "Origin(42)" {
		t.Errorf("String() = %q, want %q", got, "Origin(42)")
	}
	if Origin(-1).Valid() {
		t.Error("Origin(-1).Valid() = true")
	}
}

func TestOriginJSON(t *testing.T) {
	var v struct {
		Origin Origin `json:"origin"`
	}
	if err := json.Unmarshal([]byte(`{"origin":"left"}`), &v); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if v.Origin != OriginLeft {
		t.Errorf("Origin = %v, want left", v.Origin)
	}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if string(data) != `{"origin":"left"}` {
		t.Errorf("Marshal = %s", data)
	}
}
