package hexui

import (
	"image"

	tea "charm.land/bubbletea/v2"
)

// handleMouse tracks the pointer and resolves left clicks to tiles.
// Clicks on empty canvas background are ignored; only tiles listen.
func handleMouse(m Model, msg tea.MouseMsg, canvas image.Rectangle) (Model, tea.Cmd) {
	mouse := msg.Mouse()
	m.MouseX = mouse.X
	m.MouseY = mouse.Y

	if m.GotoOpen {
		return m, nil
	}
	if !image.Pt(mouse.X, mouse.Y).In(canvas) {
		return m, nil
	}

	if _, ok := msg.(tea.MouseClickMsg); ok && mouse.Button == tea.MouseLeft {
		ix := buildTileIndex(m.Board, canvas)
		if hit, ok := ix.HitTest(image.Pt(mouse.X, mouse.Y)); ok {
			m = m.selectTile(hit.ID)
		}
	}

	return m, nil
}
