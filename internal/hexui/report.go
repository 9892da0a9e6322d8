package hexui

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wesen/hexvis/internal/verify"
	"github.com/wesen/hexvis/pkg/cellgrid"
	"github.com/wesen/hexvis/pkg/hexboard"
	"github.com/wesen/hexvis/pkg/termlayout"
)

const reportPanelWidth = 34

// Panel styles — shared background so padded lines blend together.
var (
	panelTitleStyle = lipgloss.NewStyle().
			Foreground(toolbarColor).
			Background(colorPanelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(footerColor).
			Background(colorPanelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(tileBaseText).
			Background(colorPanelBG)

	panelPassStyle = lipgloss.NewStyle().
			Foreground(passColor).
			Background(colorPanelBG).
			Bold(true)

	panelFailStyle = lipgloss.NewStyle().
			Foreground(failColor).
			Background(colorPanelBG).
			Bold(true)

	panelLineStyle = lipgloss.NewStyle().
			Background(colorPanelBG)
)

// padLine right-pads an already-styled line to width with background.
func padLine(s string, width int) string {
	pad := width - lipgloss.Width(s)
	if pad > 0 {
		s += panelLineStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// intsJSON formats ids the way the report quotes them: [11,12,17].
func intsJSON(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// miniGlyphs maps mini-grid cell states to their 2-char glyph and style.
var miniGlyphs = map[verify.CellState]struct {
	ch    rune
	style cellgrid.StyleKey
}{
	verify.CellEmpty:    {' ', styleMiniEmpty},
	verify.CellPlain:    {'·', styleMiniPlain},
	verify.CellCenter:   {'◉', styleMiniCenter},
	verify.CellAffected: {'●', styleMiniAffected},
}

// miniGridPairRows renders the Expected and Actual mini-grids side by
// side, one styled string per row.
func miniGridPairRows(b *hexboard.Board, r verify.Result) []string {
	const size = verify.DefaultMiniGridSize
	const cellW = 2
	const gap = 3
	gridW := size * cellW

	left := verify.MiniGrid(b, r.Tile, r.Expected, size)
	right := verify.MiniGrid(b, r.Tile, r.Actual, size)

	buf := cellgrid.New(gridW*2+gap, size, styleMiniEmpty)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			g := miniGlyphs[left[row][col]]
			buf.Set(col*cellW, row, g.ch, g.style)
			g = miniGlyphs[right[row][col]]
			buf.Set(gridW+gap+col*cellW, row, g.ch, g.style)
		}
	}
	return strings.Split(buf.Render(miniBufStyles), "\n")
}

// reportLines builds the full report body: one block per fixture in
// fixture order, with diff listings only on failure.
func reportLines(b *hexboard.Board, results []verify.Result) []string {
	var lines []string
	for _, r := range results {
		verdict := panelPassStyle.Render("PASS")
		if !r.Pass {
			verdict = panelFailStyle.Render("FAIL")
		}
		lines = append(lines,
			panelTextStyle.Render(fmt.Sprintf(" TILE %d: ", r.Tile))+verdict,
			panelDimStyle.Render("  Expected     Actual"),
		)
		for _, row := range miniGridPairRows(b, r) {
			lines = append(lines, panelLineStyle.Render("  ")+row)
		}
		if !r.Pass {
			lines = append(lines,
				panelTextStyle.Render("  expected: "+intsJSON(r.Expected)),
				panelTextStyle.Render("  actual  : "+intsJSON(r.Actual)),
			)
			if len(r.Missing) > 0 {
				lines = append(lines, panelFailStyle.Render("  missing : "+intsJSON(r.Missing)))
			}
			if len(r.Extra) > 0 {
				lines = append(lines, panelFailStyle.Render("  extra   : "+intsJSON(r.Extra)))
			}
		}
		lines = append(lines, "")
	}
	return lines
}

// buildReportLayer renders the verification panel into its region,
// applying the scroll offset.
func buildReportLayer(m Model, region termlayout.Region) *lipgloss.Layer {
	pr := region.Rect
	width, height := pr.Dx(), pr.Dy()
	if width <= 0 || height <= 0 {
		return lipgloss.NewLayer("").X(pr.Min.X).Y(pr.Min.Y).Z(1).ID("report")
	}

	sep := ""
	if width > 2 {
		sep = strings.Repeat("─", width-2)
	}
	lines := []string{
		panelTitleStyle.Render(" AUTOMATED TESTS"),
		panelDimStyle.Render(" " + sep),
	}
	body := reportLines(m.Board, m.Results)

	// Scroll the body, keeping the header pinned.
	scroll := m.ReportScroll
	if scroll > len(body) {
		scroll = len(body)
	}
	lines = append(lines, body[scroll:]...)

	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}

	return lipgloss.NewLayer(strings.Join(lines, "\n")).
		X(pr.Min.X).Y(pr.Min.Y).Z(1).ID("report")
}
