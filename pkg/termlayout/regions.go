// Package termlayout computes named screen regions for a terminal UI and
// provides helpers that turn regions into lipgloss layers.
package termlayout

import "image"

// Region is a named rectangle of the terminal.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout is the set of computed regions for one terminal size.
type Layout struct {
	TermW, TermH int
	regions      map[string]Region
}

// Get returns the named region; unknown names yield a zero Region.
func (l Layout) Get(name string) Region {
	return l.regions[name]
}

// Builder reserves fixed-size strips from the screen edges and hands the
// leftover rectangle to one Remaining region.
type Builder struct {
	termW, termH       int
	top, bottom, right int
	pending            []Region
}

// NewBuilder starts a layout for the given terminal size.
func NewBuilder(termW, termH int) *Builder {
	return &Builder{termW: termW, termH: termH}
}

// TopFixed reserves height rows across the top.
func (b *Builder) TopFixed(name string, height int) *Builder {
	b.pending = append(b.pending, Region{
		Name: name,
		Rect: image.Rect(0, b.top, b.termW, b.top+height),
	})
	b.top += height
	return b
}

// BottomFixed reserves height rows across the bottom.
func (b *Builder) BottomFixed(name string, height int) *Builder {
	y := b.termH - b.bottom - height
	b.pending = append(b.pending, Region{
		Name: name,
		Rect: image.Rect(0, y, b.termW, y+height),
	})
	b.bottom += height
	return b
}

// RightFixed reserves width columns on the right, between any top and
// bottom strips.
func (b *Builder) RightFixed(name string, width int) *Builder {
	x := b.termW - b.right - width
	b.pending = append(b.pending, Region{
		Name: name,
		Rect: image.Rect(x, b.top, x+width, b.termH-b.bottom),
	})
	b.right += width
	return b
}

// Remaining names whatever rectangle the fixed strips left over.
func (b *Builder) Remaining(name string) *Builder {
	var rect image.Rectangle
	x1 := b.termW - b.right
	y1 := b.termH - b.bottom
	if x1 > 0 && y1 > b.top {
		rect = image.Rect(0, b.top, x1, y1)
	}
	b.pending = append(b.pending, Region{Name: name, Rect: rect})
	return b
}

// Build finalizes the Layout. Regions that came out inverted (terminal too
// small for the fixed strips) collapse to empty rectangles.
func (b *Builder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		regions: make(map[string]Region, len(b.pending)),
	}
	for _, r := range b.pending {
		if r.Rect.Min.X >= r.Rect.Max.X || r.Rect.Min.Y >= r.Rect.Max.Y {
			r.Rect = image.Rectangle{}
		}
		l.regions[r.Name] = r
	}
	return l
}
