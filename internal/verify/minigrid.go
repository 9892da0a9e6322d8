package verify

import "github.com/wesen/hexvis/pkg/hexboard"

// CellState classifies one cell of a mini-grid snapshot.
type CellState int

const (
	CellEmpty    CellState = iota // no tile at this placement
	CellPlain                     // tile present, not in the included set
	CellCenter                    // the center tile itself
	CellAffected                  // included tile other than the center
)

// DefaultMiniGridSize is the window edge length used by the report.
const DefaultMiniGridSize = 5

// MiniGrid builds a size×size window of placement offsets centered on the
// given tile, marking which positions hold tiles and how they relate to
// the included id set. size must be odd; even sizes are bumped up by one.
// An unknown center anchors the window at placement (0,0), matching how
// the fixtures treat unknown tiles (empty actual set, not an error).
func MiniGrid(b *hexboard.Board, center int, included []int, size int) [][]CellState {
	if size < 1 {
		size = DefaultMiniGridSize
	}
	if size%2 == 0 {
		size++
	}
	half := size / 2

	anchor, _ := b.PlacementOf(center) // zero Placement when unknown

	grid := make([][]CellState, size)
	for r := 0; r < size; r++ {
		row := make([]CellState, size)
		for c := 0; c < size; c++ {
			col := anchor.Col + c - half
			rowPos := anchor.Row + r - half
			id, ok := b.TileAt(col, rowPos)
			switch {
			case !ok:
				row[c] = CellEmpty
			case id == center && inSet(included, id):
				row[c] = CellCenter
			case inSet(included, id):
				row[c] = CellAffected
			default:
				row[c] = CellPlain
			}
		}
		grid[r] = row
	}
	return grid
}

func inSet(ids []int, want int) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}
