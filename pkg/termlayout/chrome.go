package termlayout

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// BarLayer renders a full-width single-row bar (toolbar, footer) at row y.
func BarLayer(id, content string, width, y int, style lipgloss.Style) *lipgloss.Layer {
	return lipgloss.NewLayer(style.Width(width).Render(content)).
		X(0).Y(y).Z(0).ID(id)
}

// FillLayer covers a region with styled blank lines, for backgrounds.
func FillLayer(r Region, style lipgloss.Style, id string, z int) *lipgloss.Layer {
	w, h := r.Rect.Dx(), r.Rect.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
	}
	row := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = row
	}
	return lipgloss.NewLayer(style.Render(strings.Join(lines, "\n"))).
		X(r.Rect.Min.X).Y(r.Rect.Min.Y).Z(z).ID(id)
}

// SeparatorLayer draws a vertical │ rule of the given height.
func SeparatorLayer(x, y, height int, style lipgloss.Style) *lipgloss.Layer {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = "│"
	}
	return lipgloss.NewLayer(style.Render(strings.Join(lines, "\n"))).
		X(x).Y(y).Z(1).ID("separator")
}

// ModalLayer centers boxed content over the whole screen at a high Z.
func ModalLayer(content string, termW, termH int, boxStyle lipgloss.Style) *lipgloss.Layer {
	rendered := boxStyle.Render(content)
	cx := (termW - lipgloss.Width(rendered)) / 2
	cy := (termH - lipgloss.Height(rendered)) / 2
	if cx < 0 {
		cx = 0
	}
	if cy < 0 {
		cy = 0
	}
	return lipgloss.NewLayer(rendered).X(cx).Y(cy).Z(100).ID("modal")
}
