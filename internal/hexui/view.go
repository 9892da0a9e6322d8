package hexui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wesen/hexvis/pkg/termlayout"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := termlayout.NewBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("report", reportPanelWidth).
		Remaining("canvas").
		Build()

	canvas := layout.Get("canvas").Rect
	report := layout.Get("report")

	ix := buildTileIndex(m.Board, canvas)

	var layers []*lipgloss.Layer

	// Chrome
	edgesState := "off"
	if m.ShowEdges {
		edgesState = "on"
	}
	tbContent := fmt.Sprintf(
		" HEXVIS  │  click a tile = highlight its neighborhood  │  [g]oto [e]dges %s  │  ↑↓ report  [q]uit",
		edgesState,
	)
	layers = append(layers,
		termlayout.BarLayer("toolbar", tbContent, m.Width, 0, tbStyle),
		termlayout.BarLayer("footer", m.footerContent(), m.Width, m.Height-1, ftStyle),
	)

	// Canvas: background + edge overlay, then the tiles on top.
	layers = append(layers, buildCanvasLayer(ix, m.Assign, canvas, m.ShowEdges))
	layers = append(layers, buildTileLayers(ix, m.Assign, canvas)...)

	// Report panel with separator.
	if !report.Rect.Empty() {
		layers = append(layers,
			termlayout.SeparatorLayer(report.Rect.Min.X-1, report.Rect.Min.Y, report.Rect.Dy(), ftStyle),
			buildReportLayer(m, report),
		)
	}

	if m.GotoOpen {
		layers = append(layers, buildGotoModalLayer(m))
	}

	comp := lipgloss.NewCompositor(layers...)
	screen := lipgloss.NewCanvas(m.Width, m.Height)
	screen.Compose(comp)

	v := tea.NewView(screen.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

// footerContent summarizes pointer and selection state.
func (m Model) footerContent() string {
	sel := "none"
	if m.SelectedID != nil {
		id := *m.SelectedID
		if pos, ok := m.Board.PlacementOf(id); ok {
			sel = fmt.Sprintf("%d @ (%d,%d), %d neighbors",
				id, pos.Col, pos.Row, len(m.Board.NeighborsOf(id)))
		}
	}
	return fmt.Sprintf(" Mouse: (%d,%d)  Selected: %s  Tiles: %d",
		m.MouseX, m.MouseY, sel, m.Board.NumTiles())
}
