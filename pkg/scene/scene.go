package scene

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/diagram"
	"github.com/matzehuels/isogrid/pkg/errors"
	"github.com/matzehuels/isogrid/pkg/region"
)

// Node is an icon placed on a single tile.
type Node struct {
	ID       string      `json:"id" toml:"id"`
	Label    string      `json:"label,omitempty" toml:"label"`
	IconID   string      `json:"icon_id,omitempty" toml:"icon_id"`
	Position coords.Tile `json:"position" toml:"position"`
}

// TilePosition implements [region.Positioned].
func (n Node) TilePosition() coords.Tile { return n.Position }

// Group highlights a set of tiles.
type Group struct {
	ID    string        `json:"id" toml:"id"`
	Label string        `json:"label,omitempty" toml:"label"`
	Tiles []coords.Tile `json:"tiles" toml:"tiles"`
}

// ConnectorStyle is the stroke pattern of a connector.
type ConnectorStyle string

const (
	StyleSolid  ConnectorStyle = "SOLID"
	StyleDashed ConnectorStyle = "DASHED"
	StyleDotted ConnectorStyle = "DOTTED"
)

// Valid reports whether s is a known style. The empty style is treated as solid.
func (s ConnectorStyle) Valid() bool {
	switch s {
	case "", StyleSolid, StyleDashed, StyleDotted:
		return true
	}
	return false
}

// ParseConnectorStyle accepts a style name in any case.
func ParseConnectorStyle(s string) (ConnectorStyle, error) {
	style := ConnectorStyle(strings.ToUpper(s))
	if !style.Valid() {
		return "", errors.New(errors.ErrCodeInvalidInput, "unknown connector style %q (must be one of: solid, dashed, dotted)", s)
	}
	if style == "" {
		return StyleSolid, nil
	}
	return style, nil
}

// Anchor is one end of a connector. It is attached either to a node or to a
// free tile.
type Anchor struct {
	ID     string       `json:"id,omitempty" toml:"id"`
	NodeID string       `json:"node_id,omitempty" toml:"node_id"`
	Tile   *coords.Tile `json:"tile,omitempty" toml:"tile,omitempty"`
}

// ConnectorPath is the routed path of a connector. Tiles are relative to
// Origin, the top-left tile of the area the connector is drawn in.
type ConnectorPath struct {
	Tiles    []coords.Tile   `json:"tiles" toml:"tiles"`
	Origin   coords.Tile     `json:"origin" toml:"origin"`
	AreaSize coords.GridSize `json:"area_size" toml:"area_size"`
}

// Connector is a line between anchors.
type Connector struct {
	ID      string         `json:"id" toml:"id"`
	Color   string         `json:"color,omitempty" toml:"color"`
	Width   float64        `json:"width,omitempty" toml:"width"`
	Style   ConnectorStyle `json:"style,omitempty" toml:"style"`
	Anchors []Anchor       `json:"anchors" toml:"anchors"`
	Path    ConnectorPath  `json:"path" toml:"path"`
}

// Scene is a diagram snapshot. View is optional and carries the camera the
// scene was saved with.
type Scene struct {
	Name       string        `json:"name,omitempty" toml:"name"`
	View       *diagram.View `json:"view,omitempty" toml:"view,omitempty"`
	Nodes      []Node        `json:"nodes" toml:"nodes"`
	Groups     []Group       `json:"groups,omitempty" toml:"groups"`
	Connectors []Connector   `json:"connectors,omitempty" toml:"connectors"`
}

// Positions returns the tile of every node, in node order.
func (s *Scene) Positions() []coords.Tile {
	return region.Positions(s.Nodes)
}

// NodesAt returns the nodes placed on tile, in scene order.
func (s *Scene) NodesAt(tile coords.Tile) []Node {
	return region.FilterByTile(tile, s.Nodes)
}

// Node returns the node with the given id.
func (s *Scene) Node(id string) (Node, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// AssignIDs gives every node, group, connector and anchor without an id a
// random UUID.
func (s *Scene) AssignIDs() {
	for i := range s.Nodes {
		if s.Nodes[i].ID == "" {
			s.Nodes[i].ID = uuid.NewString()
		}
	}
	for i := range s.Groups {
		if s.Groups[i].ID == "" {
			s.Groups[i].ID = uuid.NewString()
		}
	}
	for i := range s.Connectors {
		c := &s.Connectors[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		for j := range c.Anchors {
			if c.Anchors[j].ID == "" {
				c.Anchors[j].ID = uuid.NewString()
			}
		}
	}
}

// Validate checks ids, anchors, connector styles and the optional view.
func (s *Scene) Validate() error {
	seen := make(map[string]string)
	claim := func(kind, id string) error {
		if id == "" {
			return errors.New(errors.ErrCodeInvalidScene, "%s without id", kind)
		}
		if prev, ok := seen[id]; ok {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate id %q (%s and %s)", id, prev, kind)
		}
		seen[id] = kind
		return nil
	}

	for _, n := range s.Nodes {
		if err := claim("node", n.ID); err != nil {
			return err
		}
	}
	for _, g := range s.Groups {
		if err := claim("group", g.ID); err != nil {
			return err
		}
	}
	for _, c := range s.Connectors {
		if err := claim("connector", c.ID); err != nil {
			return err
		}
		if !c.Style.Valid() {
			return errors.New(errors.ErrCodeInvalidScene, "connector %q: unknown style %q", c.ID, c.Style)
		}
		if c.Width < 0 {
			return errors.New(errors.ErrCodeInvalidScene, "connector %q: negative width %v", c.ID, c.Width)
		}
		for _, a := range c.Anchors {
			if _, err := s.AnchorPosition(a); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidScene, err, "connector %q", c.ID)
			}
		}
	}

	if s.View != nil {
		if err := s.View.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// AnchorPosition resolves an anchor to the tile it is attached to.
func (s *Scene) AnchorPosition(a Anchor) (coords.Tile, error) {
	return AnchorPosition(a, s.Nodes)
}

// AnchorPosition resolves an anchor against nodes. Node anchors take the
// node's position; tile anchors return their tile.
func AnchorPosition(a Anchor, nodes []Node) (coords.Tile, error) {
	switch {
	case a.NodeID != "" && a.Tile != nil:
		return coords.Tile{}, errors.New(errors.ErrCodeInvalidScene, "anchor %q references both node %q and tile %v", a.ID, a.NodeID, *a.Tile)
	case a.Tile != nil:
		return *a.Tile, nil
	case a.NodeID != "":
		for _, n := range nodes {
			if n.ID == a.NodeID {
				return n.Position, nil
			}
		}
		return coords.Tile{}, errors.New(errors.ErrCodeNotFound, "anchor %q: node %q not found", a.ID, a.NodeID)
	default:
		return coords.Tile{}, errors.New(errors.ErrCodeInvalidScene, "anchor %q has neither node nor tile", a.ID)
	}
}

func (s *Scene) String() string {
	name := s.Name
	if name == "" {
		name = "scene"
	}
	return fmt.Sprintf("%s (%d nodes, %d groups, %d connectors)", name, len(s.Nodes), len(s.Groups), len(s.Connectors))
}
