package verify

import (
	"reflect"
	"testing"

	"github.com/wesen/hexvis/pkg/hexboard"
)

func TestDefaultCasesAllPass(t *testing.T) {
	b := hexboard.Default()
	results := Run(b, DefaultCases())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Pass {
			t.Errorf("tile %d: expected pass, got missing=%v extra=%v", r.Tile, r.Missing, r.Extra)
		}
		if len(r.Missing) != 0 || len(r.Extra) != 0 {
			t.Errorf("tile %d: passing result should have empty diffs", r.Tile)
		}
	}
	if !AllPass(results) {
		t.Error("AllPass should be true for the default fixtures")
	}
}

func TestRunPreservesCaseOrder(t *testing.T) {
	b := hexboard.Default()
	cases := []Case{
		{Tile: 32, Expected: []int{26, 27, 31, 32, 36}},
		{Tile: 18, Expected: []int{11, 12, 17, 18, 19, 24, 25}},
	}
	results := Run(b, cases)
	if results[0].Tile != 32 || results[1].Tile != 18 {
		t.Errorf("results out of order: got tiles %d,%d", results[0].Tile, results[1].Tile)
	}
}

func TestRunDetectsMissingAndExtra(t *testing.T) {
	b := hexboard.Default()
	// Tile 18's real set is {11,12,17,18,19,24,25}; swap 25 for 99.
	results := Run(b, []Case{{Tile: 18, Expected: []int{11, 12, 17, 18, 19, 24, 99}}})
	r := results[0]
	if r.Pass {
		t.Fatal("expected failure for doctored fixture")
	}
	if !reflect.DeepEqual(r.Missing, []int{99}) {
		t.Errorf("missing = %v, want [99]", r.Missing)
	}
	if !reflect.DeepEqual(r.Extra, []int{25}) {
		t.Errorf("extra = %v, want [25]", r.Extra)
	}
}

func TestRunSortsForComparison(t *testing.T) {
	b := hexboard.Default()
	// Same set as the real adjacency of 18, deliberately shuffled.
	results := Run(b, []Case{{Tile: 18, Expected: []int{25, 11, 24, 12, 19, 17, 18}}})
	r := results[0]
	if !r.Pass {
		t.Fatalf("order must not affect pass/fail: missing=%v extra=%v", r.Missing, r.Extra)
	}
	if !sortedAscending(r.Expected) || !sortedAscending(r.Actual) {
		t.Error("Expected and Actual should be sorted for display")
	}
}

func TestRunUnknownTileFailsWithoutError(t *testing.T) {
	b := hexboard.Default()
	results := Run(b, []Case{{Tile: 999, Expected: []int{1, 2}}})
	r := results[0]
	if r.Pass {
		t.Fatal("unknown tile with non-empty expectation must fail")
	}
	if len(r.Actual) != 0 {
		t.Errorf("unknown tile actual = %v, want empty", r.Actual)
	}
	if !reflect.DeepEqual(r.Missing, []int{1, 2}) {
		t.Errorf("missing = %v, want [1 2]", r.Missing)
	}

	// Empty expectation against an unknown tile is the one passing case.
	results = Run(b, []Case{{Tile: 999, Expected: nil}})
	if !results[0].Pass {
		t.Error("unknown tile with empty expectation should pass")
	}
}

func sortedAscending(ids []int) bool {
	for i := 1; i < len(ids); i++ {
		if ids[i-1] > ids[i] {
			return false
		}
	}
	return true
}
