package hexboard

import "sort"

// Highlight is the visual state of a tile under the current selection.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightCenter
	HighlightAffected
)

// Assignment maps every tile to a Highlight. Tiles without an entry are
// HighlightNone, so the zero-value friendly lookup goes through State.
type Assignment struct {
	states map[int]Highlight
}

// State returns the highlight for a tile, HighlightNone if unassigned.
func (a Assignment) State(id int) Highlight {
	return a.states[id]
}

// Center returns the tile marked HighlightCenter, if any.
func (a Assignment) Center() (int, bool) {
	for id, s := range a.states {
		if s == HighlightCenter {
			return id, true
		}
	}
	return 0, false
}

// Affected returns the affected tile ids in ascending order.
func (a Assignment) Affected() []int {
	var ids []int
	for id, s := range a.states {
		if s == HighlightAffected {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	return ids
}

// Select computes the highlight assignment for a click on the given tile.
// Every call starts from all-none; selecting is never additive. A tile with
// no configured adjacency (including unknown ids) yields the all-none
// assignment, so clicking it simply clears whatever was highlighted.
func Select(b *Board, id int) Assignment {
	neighbors := b.NeighborsOf(id)
	if len(neighbors) == 0 {
		return Assignment{}
	}

	states := make(map[int]Highlight, len(neighbors))
	for _, n := range neighbors {
		if n == id {
			states[n] = HighlightCenter
		} else {
			states[n] = HighlightAffected
		}
	}
	return Assignment{states: states}
}
