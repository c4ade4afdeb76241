package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/isogrid/pkg/coords"
	"github.com/matzehuels/isogrid/pkg/diagram"
	"github.com/matzehuels/isogrid/pkg/scene"
)

const (
	panStep    = 20.0 // pixels per pan key press
	zoomStep   = 1.25
	gridRadius = 4 // tiles shown around the cursor in the mini grid
)

// Explorer styles
var (
	exploreKeyStyle    = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	exploreCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	exploreNodeStyle   = lipgloss.NewStyle().Foreground(colorGreen)
	exploreDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	exploreErrStyle    = lipgloss.NewStyle().Foreground(colorRed)
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var view viewFlags

	cmd := &cobra.Command{
		Use:   "explore [scene]",
		Short: "Interactively explore the projection in the terminal",
		Long: `Interactively explore the projection.

Move a tile cursor and watch its screen position, the tile found back under
that position and the nodes on it. Pan and zoom change the view.

Keys:
  arrows / hjkl   move the cursor along the tile axes
  HJKL            pan the view
  + / -           zoom in / out
  o               cycle the tile origin
  f               fit the scene to the viewport
  0               reset the view
  q               quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var s *scene.Scene
			var sceneView *diagram.View
			if len(args) == 1 {
				var err error
				if s, err = scene.ReadFile(args[0]); err != nil {
					return err
				}
				sceneView = s.View
			}
			opts, err := view.options(c.Config.View, sceneView)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newExploreModel(s, opts.View()), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	view.register(cmd)
	return cmd
}

// =============================================================================
// ExploreModel - Interactive projection explorer
// =============================================================================

// ExploreModel is the bubbletea model for the projection explorer.
type ExploreModel struct {
	Scene  *scene.Scene // may be nil
	Camera diagram.View
	Cursor coords.Tile
	Origin coords.Origin

	initial diagram.View
	err     error
}

func newExploreModel(s *scene.Scene, view diagram.View) ExploreModel {
	return ExploreModel{Scene: s, Camera: view, initial: view}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.err = nil

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "right", "l":
		m.Cursor.X++
	case "left", "h":
		m.Cursor.X--
	case "up", "k":
		m.Cursor.Y++
	case "down", "j":
		m.Cursor.Y--
	case "L":
		m.Camera.Scroll = m.Camera.Scroll.Pan(coords.Coords{X: panStep})
	case "H":
		m.Camera.Scroll = m.Camera.Scroll.Pan(coords.Coords{X: -panStep})
	case "K":
		m.Camera.Scroll = m.Camera.Scroll.Pan(coords.Coords{Y: -panStep})
	case "J":
		m.Camera.Scroll = m.Camera.Scroll.Pan(coords.Coords{Y: panStep})
	case "+", "=":
		m.Camera.Zoom = min(m.Camera.Zoom*zoomStep, diagram.DefaultMaxZoom)
	case "-":
		m.Camera.Zoom = max(m.Camera.Zoom/zoomStep, diagram.DefaultMinZoom)
	case "o":
		m.Origin = (m.Origin + 1) % coords.Origin(len(coords.Origins))
	case "0":
		m.Camera = m.initial
		m.Cursor = coords.Tile{}
	case "f":
		m.fit()
	}
	return m, nil
}

func (m *ExploreModel) fit() {
	if m.Scene == nil {
		return
	}
	fit, err := diagram.FitToScreen(m.Scene.Positions(), m.Camera, diagram.FitOptions{ApplyZoom: true})
	if err != nil {
		m.err = err
		return
	}
	m.Camera = fit.View(m.Camera.Viewport)
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Isometric Explorer"))
	b.WriteString("\n")
	b.WriteString(exploreDimStyle.Render("arrows move  HJKL pan  +/- zoom  o origin  f fit  0 reset  q quit"))
	b.WriteString("\n\n")

	p, err := m.Camera.Projector()
	if err != nil {
		b.WriteString(exploreErrStyle.Render(err.Error()))
		return b.String()
	}

	screen := p.TileToScreen(m.Cursor, m.Origin)
	center := p.TileToScreen(m.Cursor, coords.OriginCenter)
	back, err := p.ScreenToTile(center)
	backStr := back.String()
	if err != nil {
		backStr = err.Error()
	}
	size := p.TileSize()

	rows := [][]string{
		{"tile", m.Cursor.String()},
		{"origin", m.Origin.String()},
		{"screen", formatCoords(screen)},
		{"locate", backStr},
		{"zoom", fmt.Sprintf("%.3g", m.Camera.Zoom)},
		{"scroll", formatCoords(m.Camera.Scroll.Position)},
		{"viewport", m.Camera.Viewport.String()},
		{"tile size", fmt.Sprintf("%.2f x %.2f", size.Width, size.Height)},
	}
	if m.Scene != nil {
		var ids []string
		for _, n := range m.Scene.NodesAt(m.Cursor) {
			ids = append(ids, n.ID)
		}
		nodes := "-"
		if len(ids) > 0 {
			nodes = strings.Join(ids, ", ")
		}
		rows = append(rows, []string{"nodes", nodes})
		if box, err := diagram.BoundingBox(m.Scene.Positions(), m.Camera); err == nil {
			rows = append(rows, []string{"bounds", fmt.Sprintf("%s %.0fx%.0f", formatCoords(box.TopLeft()), box.Width, box.Height)})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return exploreKeyStyle
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.grid())
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(exploreErrStyle.Render(m.err.Error()))
	}
	return b.String()
}

// grid draws the tiles around the cursor with x to the right and y up.
func (m ExploreModel) grid() string {
	occupied := make(map[coords.Tile]bool)
	if m.Scene != nil {
		for _, t := range m.Scene.Positions() {
			occupied[t] = true
		}
	}

	var b strings.Builder
	for dy := gridRadius; dy >= -gridRadius; dy-- {
		b.WriteString("  ")
		for dx := -gridRadius; dx <= gridRadius; dx++ {
			t := coords.Tile{X: m.Cursor.X + dx, Y: m.Cursor.Y + dy}
			switch {
			case t == m.Cursor:
				b.WriteString(exploreCursorStyle.Render("@"))
			case occupied[t]:
				b.WriteString(exploreNodeStyle.Render("#"))
			default:
				b.WriteString(exploreDimStyle.Render("."))
			}
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	return b.String()
}
