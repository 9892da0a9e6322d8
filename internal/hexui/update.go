package hexui

import (
	"image"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/hexvis/pkg/hexboard"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case tea.KeyMsg:
		if m.GotoOpen {
			return m.handleGotoKeys(msg)
		}
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return handleMouse(m, msg, m.canvasRect())
	}

	return m, nil
}

// handleKeys processes keyboard input outside the goto modal.
func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "e":
		m.ShowEdges = !m.ShowEdges

	case "g":
		return m.openGotoModal()

	case "up", "k":
		if m.ReportScroll > 0 {
			m.ReportScroll--
		}

	case "down", "j":
		if m.ReportScroll < m.maxReportScroll() {
			m.ReportScroll++
		}

	// Escape clears the selection back to all-none.
	case "esc", "escape":
		m.Assign = hexboard.Assignment{}
		m.SelectedID = nil
	}

	return m, nil
}

// openGotoModal starts the tile-id prompt.
func (m Model) openGotoModal() (tea.Model, tea.Cmd) {
	m.GotoOpen = true
	m.GotoInput = newGotoInput()
	cmd := m.GotoInput.Focus()
	return m, cmd
}

// handleGotoKeys processes keys while the goto modal is open.
func (m Model) handleGotoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.GotoOpen = false
		return m, nil

	case "enter":
		m.GotoOpen = false
		raw := strings.TrimSpace(m.GotoInput.Value())
		if raw == "" {
			return m, nil
		}
		id, err := strconv.Atoi(raw)
		if err != nil {
			return m, nil
		}
		// Unknown ids clear the highlight, same as clicking such a tile.
		return m.selectTile(id), nil

	default:
		var cmd tea.Cmd
		m.GotoInput, cmd = m.GotoInput.Update(msg)
		return m, cmd
	}
}

// canvasRect computes the canvas region for mouse coordinate checks.
// Must match the layout in View.
func (m Model) canvasRect() image.Rectangle {
	return image.Rect(0, 1, m.Width-reportPanelWidth, m.Height-1)
}

// maxReportScroll bounds scrolling to the report's overflow.
func (m Model) maxReportScroll() int {
	visible := m.Height - 4 // toolbar, footer, and the pinned panel header
	total := len(reportLines(m.Board, m.Results))
	if total <= visible {
		return 0
	}
	return total - visible
}
