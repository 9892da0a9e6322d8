package hexboard

import (
	"reflect"
	"testing"
)

func TestSelectScenarios(t *testing.T) {
	b := Default()
	tests := []struct {
		tile     int
		affected []int
	}{
		{18, []int{11, 12, 17, 19, 24, 25}},
		{32, []int{26, 27, 31, 36}},
		{21, []int{14, 20, 27}},
	}
	for _, tc := range tests {
		a := Select(b, tc.tile)
		if a.State(tc.tile) != HighlightCenter {
			t.Errorf("Select(%d): center not highlighted", tc.tile)
		}
		if got := a.Affected(); !reflect.DeepEqual(got, tc.affected) {
			t.Errorf("Select(%d): affected = %v, want %v", tc.tile, got, tc.affected)
		}
	}
}

func TestSelectUnknownTileIsAllNone(t *testing.T) {
	b := Default()
	a := Select(b, 999)
	if _, ok := a.Center(); ok {
		t.Error("unknown tile must not produce a center")
	}
	if len(a.Affected()) != 0 {
		t.Errorf("unknown tile must not affect anything, got %v", a.Affected())
	}
	for _, id := range b.Tiles() {
		if a.State(id) != HighlightNone {
			t.Fatalf("tile %d: expected HighlightNone, got %v", id, a.State(id))
		}
	}
}

func TestSelectIdempotent(t *testing.T) {
	b := Default()
	first := Select(b, 18)
	second := Select(b, 18)
	for _, id := range b.Tiles() {
		if first.State(id) != second.State(id) {
			t.Fatalf("tile %d: repeated Select disagrees (%v vs %v)", id, first.State(id), second.State(id))
		}
	}
}

func TestSelectReplacesPriorState(t *testing.T) {
	b := Default()
	// Selecting 18 then 32 must not leave any of 18's highlights behind.
	_ = Select(b, 18)
	a := Select(b, 32)
	center, ok := a.Center()
	if !ok || center != 32 {
		t.Fatalf("expected center 32, got %d,%v", center, ok)
	}
	if a.State(18) != HighlightNone {
		t.Error("tile 18 should be back to none after selecting 32")
	}
}

func TestSelectExactlyOneCenter(t *testing.T) {
	b := Default()
	for _, id := range b.Tiles() {
		a := Select(b, id)
		centers := 0
		for _, other := range b.Tiles() {
			if a.State(other) == HighlightCenter {
				centers++
			}
		}
		if centers != 1 {
			t.Errorf("Select(%d): expected exactly 1 center, got %d", id, centers)
		}
	}
}
