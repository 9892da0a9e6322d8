package hexui

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	"charm.land/lipgloss/v2"

	"github.com/wesen/hexvis/pkg/termlayout"
)

// newGotoInput builds the tile-id prompt.
func newGotoInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "tile id"
	ti.CharLimit = 4
	return ti
}

// buildGotoModalLayer renders the centered goto prompt.
func buildGotoModalLayer(m Model) *lipgloss.Layer {
	titleStyle := lipgloss.NewStyle().
		Foreground(toolbarColor).
		Background(colorPanelBG).
		Bold(true)
	hintStyle := lipgloss.NewStyle().
		Foreground(footerColor).
		Background(colorPanelBG).
		Italic(true)

	lines := []string{
		titleStyle.Render("GOTO TILE"),
		"",
		m.GotoInput.View(),
		"",
		hintStyle.Render("[enter] select  [esc] cancel"),
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(toolbarColor).
		Background(colorPanelBG).
		Width(32).
		Padding(1, 2)

	return termlayout.ModalLayer(strings.Join(lines, "\n"), m.Width, m.Height, boxStyle)
}
