// Package hexboard holds the static hexagon grid model: tile placements,
// the precomputed adjacency table, and selection highlighting.
//
// Adjacency is data, not geometry. Each tile's neighbor list includes the
// tile itself, exactly as the source tables supply it; nothing here derives
// neighbors from coordinates.
package hexboard

import (
	"fmt"
	"sort"
)

// Placement is the layout position of a tile: column index, then row index
// within that column.
type Placement struct {
	Col, Row int
}

// Board is the immutable grid model. Construct with New or Default; all
// methods are read-only lookups, safe to share after construction.
type Board struct {
	adjacency map[int][]int
	placement map[int]Placement
	byPos     map[Placement]int
	cols      int
	rowsByCol []int
}

// New builds a Board from an adjacency table and a placement table. The two
// tables must cover the same tile ids and no two tiles may share a
// placement. The input maps are copied; callers keep ownership.
func New(adjacency map[int][]int, placement map[int]Placement) (*Board, error) {
	b := &Board{
		adjacency: make(map[int][]int, len(adjacency)),
		placement: make(map[int]Placement, len(placement)),
		byPos:     make(map[Placement]int, len(placement)),
	}

	for id, pos := range placement {
		if _, ok := adjacency[id]; !ok {
			return nil, fmt.Errorf("hexboard: tile %d has a placement but no adjacency entry", id)
		}
		if prev, taken := b.byPos[pos]; taken {
			return nil, fmt.Errorf("hexboard: tiles %d and %d share placement (%d,%d)", prev, id, pos.Col, pos.Row)
		}
		b.placement[id] = pos
		b.byPos[pos] = id
		if pos.Col+1 > b.cols {
			b.cols = pos.Col + 1
		}
	}

	for id, neighbors := range adjacency {
		if _, ok := placement[id]; !ok {
			return nil, fmt.Errorf("hexboard: tile %d has adjacency but no placement", id)
		}
		b.adjacency[id] = append([]int(nil), neighbors...)
	}

	b.rowsByCol = make([]int, b.cols)
	for pos := range b.byPos {
		if pos.Row+1 > b.rowsByCol[pos.Col] {
			b.rowsByCol[pos.Col] = pos.Row + 1
		}
	}

	return b, nil
}

// NumTiles returns the number of tiles on the board.
func (b *Board) NumTiles() int { return len(b.placement) }

// NumCols returns the number of layout columns.
func (b *Board) NumCols() int { return b.cols }

// RowsInCol returns how many tiles the given column holds, or 0 for an
// out-of-range column.
func (b *Board) RowsInCol(col int) int {
	if col < 0 || col >= len(b.rowsByCol) {
		return 0
	}
	return b.rowsByCol[col]
}

// PlacementOf returns the placement of a tile. The second result is false
// if the tile id is unknown.
func (b *Board) PlacementOf(id int) (Placement, bool) {
	pos, ok := b.placement[id]
	return pos, ok
}

// NeighborsOf returns a copy of the tile's configured neighbor set,
// including the tile itself. An unknown id returns an empty slice; absence
// means "no configured adjacency", not an error.
func (b *Board) NeighborsOf(id int) []int {
	neighbors, ok := b.adjacency[id]
	if !ok {
		return []int{}
	}
	return append([]int(nil), neighbors...)
}

// HasTile reports whether the id is a tile on this board.
func (b *Board) HasTile(id int) bool {
	_, ok := b.placement[id]
	return ok
}

// TileAt returns the tile occupying the given placement, if any.
func (b *Board) TileAt(col, row int) (int, bool) {
	id, ok := b.byPos[Placement{Col: col, Row: row}]
	return id, ok
}

// Tiles returns all tile ids in ascending order.
func (b *Board) Tiles() []int {
	ids := make([]int, 0, len(b.placement))
	for id := range b.placement {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
