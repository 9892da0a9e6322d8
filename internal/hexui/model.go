// Package hexui is the terminal presentation layer: it draws the hexagon
// board, forwards clicks to the selection logic, and shows the startup
// verification report in a side panel.
package hexui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/textinput"

	"github.com/wesen/hexvis/internal/verify"
	"github.com/wesen/hexvis/pkg/hexboard"
)

// Model is the main application state.
type Model struct {
	Width, Height  int
	MouseX, MouseY int

	Board   *hexboard.Board
	Results []verify.Result

	// Selection state: the last clicked tile (nil when cleared) and the
	// highlight assignment derived from it. Every click rebuilds both.
	SelectedID *int
	Assign     hexboard.Assignment

	ShowEdges    bool
	ReportScroll int

	// Goto modal state
	GotoOpen  bool
	GotoInput textinput.Model
}

// NewModel builds the initial state: verification runs first, then the
// first fixture's tile becomes the default selection, so the report and
// the interactive view always reflect the same board.
func NewModel() Model {
	board := hexboard.Default()
	cases := verify.DefaultCases()

	m := Model{
		Board:   board,
		Results: verify.Run(board, cases),
	}
	if len(cases) > 0 {
		m = m.selectTile(cases[0].Tile)
	}
	return m
}

// selectTile recomputes the highlight assignment for a click on id.
// Unknown ids clear the selection entirely.
func (m Model) selectTile(id int) Model {
	m.Assign = hexboard.Select(m.Board, id)
	if _, ok := m.Assign.Center(); ok {
		m.SelectedID = &id
	} else {
		m.SelectedID = nil
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}
