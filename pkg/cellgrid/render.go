package cellgrid

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Render flattens the buffer into a styled string, one line per row.
// Adjacent cells sharing a StyleKey are grouped into a single
// Style.Render call; per-cell rendering is far too slow for a buffer
// redrawn every frame. Style keys missing from the map render unstyled.
// An empty buffer renders to "".
func (b *Buffer) Render(styles map[StyleKey]lipgloss.Style) string {
	if b.W == 0 || b.H == 0 {
		return ""
	}

	var out strings.Builder
	run := make([]rune, 0, b.W)

	for y := 0; y < b.H; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := b.cells[y*b.W : (y+1)*b.W]

		runStyle := row[0].Style
		run = run[:0]
		flush := func() {
			if len(run) == 0 {
				return
			}
			if s, ok := styles[runStyle]; ok {
				out.WriteString(s.Render(string(run)))
			} else {
				out.WriteString(string(run))
			}
			run = run[:0]
		}

		for _, cell := range row {
			if cell.Style != runStyle {
				flush()
				runStyle = cell.Style
			}
			run = append(run, cell.Ch)
		}
		flush()
	}

	return out.String()
}
