package snapshot

import (
	"github.com/matzehuels/isogrid/pkg/connector"
	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/diagram"
	"github.com/matzehuels/isogrid/pkg/scene"
)

// Node is a projected scene node.
type Node struct {
	ID      string           `json:"id"`
	Label   string           `json:"label,omitempty"`
	Tile    coords.Tile      `json:"tile"`
	Center  coords.Coords    `json:"center"`
	Corners [4]coords.Coords `json:"corners"`
}

// Group is a projected group: one diamond per tile.
type Group struct {
	ID    string          `json:"id"`
	Label string          `json:"label,omitempty"`
	Tiles []coords.Coords `json:"tiles"`
}

// Endpoint is a projected connector anchor. NodeID is empty for anchors on a
// free tile.
type Endpoint struct {
	AnchorID string        `json:"anchor_id,omitempty"`
	NodeID   string        `json:"node_id,omitempty"`
	Tile     coords.Tile   `json:"tile"`
	Position coords.Coords `json:"position"`
}

// Connector is a projected connector.
type Connector struct {
	ID          string               `json:"id"`
	Color       string               `json:"color,omitempty"`
	Style       scene.ConnectorStyle `json:"style"`
	StrokeWidth float64              `json:"stroke_width"`
	DashArray   string               `json:"dash_array"`
	Endpoints   []Endpoint           `json:"endpoints"`
}

// Snapshot is a scene projected through one view.
type Snapshot struct {
	Name       string           `json:"name,omitempty"`
	View       diagram.View     `json:"view"`
	TileSize   coords.PixelSize `json:"tile_size"`
	Box        coords.Box       `json:"box"`
	Nodes      []Node           `json:"nodes"`
	Groups     []Group          `json:"groups,omitempty"`
	Connectors []Connector      `json:"connectors,omitempty"`
}

// Project projects every element of s through view.
func Project(s *scene.Scene, view diagram.View) (*Snapshot, error) {
	p, err := view.Projector()
	if err != nil {
		return nil, err
	}
	box, err := diagram.BoundingBox(s.Positions(), view)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Name:     s.Name,
		View:     view,
		TileSize: p.TileSize(),
		Box:      box,
		Nodes:    make([]Node, len(s.Nodes)),
	}

	for i, n := range s.Nodes {
		snap.Nodes[i] = Node{
			ID:      n.ID,
			Label:   n.Label,
			Tile:    n.Position,
			Center:  p.TileToScreen(n.Position, coords.OriginCenter),
			Corners: p.Corners(n.Position),
		}
	}

	for _, g := range s.Groups {
		pg := Group{ID: g.ID, Label: g.Label, Tiles: make([]coords.Coords, len(g.Tiles))}
		for i, t := range g.Tiles {
			pg.Tiles[i] = p.TileToScreen(t, coords.OriginCenter)
		}
		snap.Groups = append(snap.Groups, pg)
	}

	for _, c := range s.Connectors {
		width, err := connector.StrokeWidth(c.Width, view.Zoom)
		if err != nil {
			return nil, err
		}
		pc := Connector{
			ID:          c.ID,
			Color:       c.Color,
			Style:       c.Style,
			StrokeWidth: width,
			DashArray:   connector.DashArray(c.Style, width),
		}
		for _, a := range c.Anchors {
			tile, err := scene.AnchorPosition(a, s.Nodes)
			if err != nil {
				return nil, err
			}
			pc.Endpoints = append(pc.Endpoints, Endpoint{
				AnchorID: a.ID,
				NodeID:   a.NodeID,
				Tile:     tile,
				Position: p.TileToScreen(tile, coords.OriginCenter),
			})
		}
		snap.Connectors = append(snap.Connectors, pc)
	}

	return snap, nil
}
