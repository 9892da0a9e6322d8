package hexboard

// The radius-3 hexagon board: 37 tiles numbered column-major, columns of
// height 4,5,6,7,6,5,4. Both tables were produced by the even-q offset
// generator and are kept verbatim; each neighbor list includes the tile
// itself by convention.

var defaultAdjacency = map[int][]int{
	0:  {0, 1, 4, 5},
	1:  {0, 1, 2, 5, 6},
	2:  {1, 2, 3, 6, 7},
	3:  {2, 3, 7, 8},
	4:  {0, 4, 5, 9, 10},
	5:  {0, 1, 4, 5, 6, 10, 11},
	6:  {1, 2, 5, 6, 7, 11, 12},
	7:  {2, 3, 6, 7, 8, 12, 13},
	8:  {3, 7, 8, 13, 14},
	9:  {4, 9, 10, 15, 16},
	10: {4, 5, 9, 10, 11, 16, 17},
	11: {5, 6, 10, 11, 12, 17, 18},
	12: {6, 7, 11, 12, 13, 18, 19},
	13: {7, 8, 12, 13, 14, 19, 20},
	14: {8, 13, 14, 20, 21},
	15: {9, 15, 16, 22},
	16: {9, 10, 15, 16, 17, 22, 23},
	17: {10, 11, 16, 17, 18, 23, 24},
	18: {11, 12, 17, 18, 19, 24, 25},
	19: {12, 13, 18, 19, 20, 25, 26},
	20: {13, 14, 19, 20, 21, 26, 27},
	21: {14, 20, 21, 27},
	22: {15, 16, 22, 23, 28},
	23: {16, 17, 22, 23, 24, 28, 29},
	24: {17, 18, 23, 24, 25, 29, 30},
	25: {18, 19, 24, 25, 26, 30, 31},
	26: {19, 20, 25, 26, 27, 31, 32},
	27: {20, 21, 26, 27, 32},
	28: {22, 23, 28, 29, 33},
	29: {23, 24, 28, 29, 30, 33, 34},
	30: {24, 25, 29, 30, 31, 34, 35},
	31: {25, 26, 30, 31, 32, 35, 36},
	32: {26, 27, 31, 32, 36},
	33: {28, 29, 33, 34},
	34: {29, 30, 33, 34, 35},
	35: {30, 31, 34, 35, 36},
	36: {31, 32, 35, 36},
}

var defaultPlacement = map[int]Placement{
	0:  {0, 0},
	1:  {0, 1},
	2:  {0, 2},
	3:  {0, 3},
	4:  {1, 0},
	5:  {1, 1},
	6:  {1, 2},
	7:  {1, 3},
	8:  {1, 4},
	9:  {2, 0},
	10: {2, 1},
	11: {2, 2},
	12: {2, 3},
	13: {2, 4},
	14: {2, 5},
	15: {3, 0},
	16: {3, 1},
	17: {3, 2},
	18: {3, 3},
	19: {3, 4},
	20: {3, 5},
	21: {3, 6},
	22: {4, 0},
	23: {4, 1},
	24: {4, 2},
	25: {4, 3},
	26: {4, 4},
	27: {4, 5},
	28: {5, 0},
	29: {5, 1},
	30: {5, 2},
	31: {5, 3},
	32: {5, 4},
	33: {6, 0},
	34: {6, 1},
	35: {6, 2},
	36: {6, 3},
}

// Default returns the radius-3 hexagon board. The tables are static and
// validated at build time by New; a mistake in them is a programming error,
// hence the panic.
func Default() *Board {
	b, err := New(defaultAdjacency, defaultPlacement)
	if err != nil {
		panic(err)
	}
	return b
}
