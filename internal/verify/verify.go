// Package verify checks the board's adjacency tables against ground-truth
// fixtures and produces a structured diff report, plus the mini-grid
// snapshots the UI renders next to each result.
package verify

import (
	"sort"

	"github.com/wesen/hexvis/pkg/hexboard"
)

// Case pairs a tile id with its expected neighbor set (self included).
type Case struct {
	Tile     int
	Expected []int
}

// Result is the outcome of one Case. Expected and Actual are sorted
// ascending; Missing and Extra are the two directions of the set
// difference. Pass means both are empty.
type Result struct {
	Tile     int
	Expected []int
	Actual   []int
	Missing  []int
	Extra    []int
	Pass     bool
}

// Run evaluates every case against the board, preserving case order.
// A case naming an unknown tile gets an empty actual set and (almost
// certainly) fails; it never errors.
func Run(b *hexboard.Board, cases []Case) []Result {
	results := make([]Result, 0, len(cases))
	for _, c := range cases {
		results = append(results, runCase(b, c))
	}
	return results
}

func runCase(b *hexboard.Board, c Case) Result {
	expected := append([]int(nil), c.Expected...)
	sort.Ints(expected)
	actual := b.NeighborsOf(c.Tile)
	sort.Ints(actual)

	missing := difference(expected, actual)
	extra := difference(actual, expected)

	return Result{
		Tile:     c.Tile,
		Expected: expected,
		Actual:   actual,
		Missing:  missing,
		Extra:    extra,
		Pass:     len(missing) == 0 && len(extra) == 0,
	}
}

// difference returns the elements of a that are not in b, preserving a's
// order. Both inputs are small, so the quadratic scan is fine.
func difference(a, b []int) []int {
	out := []int{}
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			out = append(out, x)
		}
	}
	return out
}

// AllPass reports whether every result passed.
func AllPass(results []Result) bool {
	for _, r := range results {
		if !r.Pass {
			return false
		}
	}
	return true
}
