package hexui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/hexvis/pkg/cellgrid"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Palette — dark slate with blue center / red affected, the same scheme
// the board uses for its highlight classes.
var (
	colorBG      = c("#1a202c")
	colorPanelBG = c("#2d3748")

	tileBase     = c("#4a5568")
	tileBaseText = c("#e2e8f0")
	tileCenter   = c("#4299e1")
	tileAffected = c("#f56565")
	highlightFG  = c("#ffffff")

	passColor = c("#68d391")
	failColor = c("#fc8181")

	toolbarColor = c("#90cdf4")
	footerColor  = c("#718096")
	edgeColor    = c("#feb2b2")
)

// Tile box styles, one per highlight state.
var (
	tileStyleNone = lipgloss.NewStyle().
			Foreground(tileBaseText).
			Background(tileBase).
			Bold(true)

	tileStyleCenter = lipgloss.NewStyle().
			Foreground(highlightFG).
			Background(tileCenter).
			Bold(true)

	tileStyleAffected = lipgloss.NewStyle().
				Foreground(highlightFG).
				Background(tileAffected).
				Bold(true)
)

// Chrome styles.
var (
	tbStyle = lipgloss.NewStyle().
		Background(c("#0d1117")).
		Foreground(toolbarColor).
		Bold(true)

	ftStyle = lipgloss.NewStyle().
		Foreground(footerColor)
)

// cellgrid style keys shared by the edge overlay and the mini-grids.
const (
	styleCanvasBG cellgrid.StyleKey = iota
	styleEdge
	styleEdgeHead
	styleMiniEmpty
	styleMiniPlain
	styleMiniCenter
	styleMiniAffected
)

var canvasBufStyles = map[cellgrid.StyleKey]lipgloss.Style{
	styleCanvasBG: lipgloss.NewStyle().Background(colorBG),
	styleEdge:     lipgloss.NewStyle().Foreground(edgeColor).Background(colorBG),
	styleEdgeHead: lipgloss.NewStyle().Foreground(tileAffected).Background(colorBG).Bold(true),
}

var miniBufStyles = map[cellgrid.StyleKey]lipgloss.Style{
	styleMiniEmpty:    lipgloss.NewStyle().Foreground(colorPanelBG).Background(colorPanelBG),
	styleMiniPlain:    lipgloss.NewStyle().Foreground(tileBase).Background(colorPanelBG),
	styleMiniCenter:   lipgloss.NewStyle().Foreground(tileCenter).Background(colorPanelBG).Bold(true),
	styleMiniAffected: lipgloss.NewStyle().Foreground(tileAffected).Background(colorPanelBG).Bold(true),
}
