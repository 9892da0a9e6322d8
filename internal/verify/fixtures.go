package verify

// DefaultCases returns the ground-truth fixtures for the radius-3 board.
// The order is fixed: the first case doubles as the startup selection.
func DefaultCases() []Case {
	return []Case{
		{Tile: 18, Expected: []int{11, 12, 17, 18, 19, 24, 25}},
		{Tile: 32, Expected: []int{26, 27, 31, 32, 36}},
		{Tile: 21, Expected: []int{14, 20, 21, 27}},
	}
}
