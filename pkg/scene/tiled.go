package scene

import (
	"fmt"
	"io/fs"
	"math"
	"path"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/errors"
)

// ImportTiled converts an isometric Tiled map into a scene. It takes an fs.FS
// so callers can pass os.DirFS or an embedded filesystem.
//
// Tiled cell (col, row) becomes tile (-row, -col): Tiled's columns run
// down-right and its rows down-left, while tile X and Y both run up the screen.
func ImportTiled(fsys fs.FS, tmxPath string) (*Scene, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "load TMX %s", tmxPath)
	}
	if m.Orientation != "isometric" {
		return nil, errors.New(errors.ErrCodeUnsupported, "%s: orientation %q is not isometric", tmxPath, m.Orientation)
	}

	s := &Scene{Name: strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))}

	for _, layer := range m.Layers {
		// Infinite maps store chunks and leave the regular grid short.
		if len(layer.Tiles) != m.Width*m.Height {
			continue
		}
		for row := 0; row < m.Height; row++ {
			for col := 0; col < m.Width; col++ {
				cell := layer.Tiles[row*m.Width+col]
				if cell == nil || cell.IsNil() {
					continue
				}
				s.Nodes = append(s.Nodes, Node{
					ID:       fmt.Sprintf("%s-%d-%d", layer.Name, col, row),
					Label:    layer.Name,
					IconID:   iconID(cell),
					Position: fromTiled(col, row),
				})
			}
		}
	}

	// Object coordinates on isometric maps are measured in tile heights
	// along both axes.
	unit := float64(m.TileHeight)
	for _, og := range m.ObjectGroups {
		group := Group{ID: "group-" + og.Name, Label: og.Name}
		for _, o := range og.Objects {
			tile := fromTiled(int(math.Floor(o.X/unit)), int(math.Floor(o.Y/unit)))
			label := o.Name
			if label == "" {
				label = og.Name
			}
			s.Nodes = append(s.Nodes, Node{
				ID:       fmt.Sprintf("object-%d", o.ID),
				Label:    label,
				Position: tile,
			})
			group.Tiles = append(group.Tiles, tile)
		}
		if len(group.Tiles) > 0 {
			s.Groups = append(s.Groups, group)
		}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func fromTiled(col, row int) coords.Tile {
	return coords.Tile{X: -row, Y: -col}
}

func iconID(cell *tiled.LayerTile) string {
	if cell.Tileset == nil {
		return fmt.Sprintf("%d", cell.ID)
	}
	return fmt.Sprintf("%s:%d", cell.Tileset.Name, cell.ID)
}
