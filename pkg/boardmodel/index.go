// Package boardmodel provides a small generic spatial index: positioned,
// sized items with stable insertion order, point hit-testing, and
// rectangle queries. The UI rebuilds one per layout pass to resolve mouse
// positions to tiles.
package boardmodel

import "image"

// Spatial is anything with a position and a size.
type Spatial interface {
	Pos() image.Point
	Size() image.Point
}

// Bounds returns the bounding rectangle of a Spatial.
func Bounds(s Spatial) image.Rectangle {
	p, sz := s.Pos(), s.Size()
	return image.Rect(p.X, p.Y, p.X+sz.X, p.Y+sz.Y)
}

// Center returns the center point of a Spatial.
func Center(s Spatial) image.Point {
	p, sz := s.Pos(), s.Size()
	return image.Pt(p.X+sz.X/2, p.Y+sz.Y/2)
}

// Index holds items in insertion order.
type Index[T Spatial] struct {
	items []T
}

// NewIndex returns an empty index with room for n items.
func NewIndex[T Spatial](n int) *Index[T] {
	return &Index[T]{items: make([]T, 0, n)}
}

// Add appends an item.
func (ix *Index[T]) Add(item T) {
	ix.items = append(ix.items, item)
}

// Len returns the number of items.
func (ix *Index[T]) Len() int { return len(ix.items) }

// Items returns the items in insertion order. The slice is shared; treat
// it as read-only.
func (ix *Index[T]) Items() []T { return ix.items }

// HitTest returns the last-added item whose bounds contain pt. The second
// result is false when nothing is hit.
func (ix *Index[T]) HitTest(pt image.Point) (T, bool) {
	for i := len(ix.items) - 1; i >= 0; i-- {
		if pt.In(Bounds(ix.items[i])) {
			return ix.items[i], true
		}
	}
	var zero T
	return zero, false
}

// InRect returns all items whose bounds overlap r, in insertion order.
func (ix *Index[T]) InRect(r image.Rectangle) []T {
	var out []T
	for _, item := range ix.items {
		if Bounds(item).Overlaps(r) {
			out = append(out, item)
		}
	}
	return out
}
