package hexdraw

import (
	"image"

	"github.com/wesen/hexvis/pkg/cellgrid"
)

// segGlyph picks the rune for point i of a walk by looking at the step to
// the next point (or from the previous one, at the end of the walk).
func segGlyph(pts []image.Point, i int) rune {
	var dx, dy int
	switch {
	case i < len(pts)-1:
		dx = pts[i+1].X - pts[i].X
		dy = pts[i+1].Y - pts[i].Y
	case i > 0:
		dx = pts[i].X - pts[i-1].X
		dy = pts[i].Y - pts[i-1].Y
	}
	return Glyph(dx, dy)
}

// Line draws a styled line between two buffer positions.
func Line(buf *cellgrid.Buffer, x0, y0, x1, y1 int, style cellgrid.StyleKey) {
	pts := Points(x0, y0, x1, y1)
	for i, p := range pts {
		buf.Set(p.X, p.Y, segGlyph(pts, i), style)
	}
}

// ArrowLine draws a line whose final point is an arrowhead aimed along the
// last segment. The head gets its own style key.
func ArrowLine(buf *cellgrid.Buffer, x0, y0, x1, y1 int, line, head cellgrid.StyleKey) {
	pts := Points(x0, y0, x1, y1)
	if len(pts) == 0 {
		return
	}
	for i, p := range pts[:len(pts)-1] {
		buf.Set(p.X, p.Y, segGlyph(pts, i), line)
	}
	last := pts[len(pts)-1]
	var dx, dy int
	if len(pts) > 1 {
		dx = last.X - pts[len(pts)-2].X
		dy = last.Y - pts[len(pts)-2].Y
	}
	buf.Set(last.X, last.Y, Tip(dx, dy), head)
}
