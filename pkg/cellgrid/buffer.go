// Package cellgrid is a 2D rune buffer with a style key per cell.
//
// The buffer knows nothing about colors: callers tag cells with small
// integer StyleKeys and supply the StyleKey→lipgloss.Style mapping at
// render time. Runes are assumed single-width.
package cellgrid

// StyleKey tags a cell with a caller-defined visual style.
type StyleKey int

// Cell is one buffer position.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a fixed-size grid of styled cells, stored row-major.
type Buffer struct {
	W, H  int
	cells []Cell
}

// New returns a w×h buffer of spaces in the given style. Negative
// dimensions are clamped to zero.
func New(w, h int, style StyleKey) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{W: w, H: h, cells: make([]Cell, w*h)}
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' ', Style: style}
	}
	return b
}

// InBounds reports whether (x, y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y). Out of bounds returns a zero Cell.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.W+x]
}

// Set writes one cell. Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.cells[y*b.W+x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes s left to right starting at (x, y), dropping any runes
// that land outside the buffer.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// FillRect fills the rectangle [x, x+w) × [y, y+h) with ch in the given
// style, clipped to the buffer.
func (b *Buffer) FillRect(x, y, w, h int, ch rune, style StyleKey) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			b.Set(xx, yy, ch, style)
		}
	}
}
