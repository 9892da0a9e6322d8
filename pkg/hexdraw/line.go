// Package hexdraw draws the adjacency overlay primitives: Bresenham line
// walks and direction-aware glyph picking, targeting a cellgrid.Buffer.
package hexdraw

import "image"

// Points returns the integer points of the line from (x0,y0) to (x1,y1),
// endpoints included, via Bresenham's algorithm. The walk is bounded by
// dx+dy+2 steps so a logic error can never spin forever.
func Points(x0, y0, x1, y1 int) []image.Point {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	pts := make([]image.Point, 0, dx+dy+1)
	x, y := x0, y0
	err := dx - dy
	for range dx + dy + 2 {
		pts = append(pts, image.Pt(x, y))
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// Glyph returns the box-drawing rune for a segment moving (dx, dy).
func Glyph(dx, dy int) rune {
	switch {
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

// Tip returns an arrowhead rune pointing along the dominant axis of
// (dx, dy).
func Tip(dx, dy int) rune {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return '▼'
		}
		return '▲'
	}
	if dx > 0 {
		return '►'
	}
	return '◄'
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
