package termlayout

import (
	"image"
	"testing"
)

func TestLayoutAllStrips(t *testing.T) {
	l := NewBuilder(80, 24).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("report", 34).
		Remaining("canvas").
		Build()

	if l.TermW != 80 || l.TermH != 24 {
		t.Fatalf("term size: got %dx%d", l.TermW, l.TermH)
	}
	tests := []struct {
		name string
		want image.Rectangle
	}{
		{"toolbar", image.Rect(0, 0, 80, 1)},
		{"footer", image.Rect(0, 23, 80, 24)},
		{"report", image.Rect(46, 1, 80, 23)},
		{"canvas", image.Rect(0, 1, 46, 23)},
	}
	for _, tc := range tests {
		if got := l.Get(tc.name).Rect; got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewBuilder(80, 24).Remaining("all").Build()
	if got := l.Get("all").Rect; got != image.Rect(0, 0, 80, 24) {
		t.Errorf("all: got %v", got)
	}
}

func TestLayoutTooSmallCollapses(t *testing.T) {
	l := NewBuilder(10, 2).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("report", 34).
		Remaining("canvas").
		Build()

	if !l.Get("canvas").Rect.Empty() {
		t.Errorf("canvas should collapse, got %v", l.Get("canvas").Rect)
	}
	if !l.Get("report").Rect.Empty() {
		t.Errorf("report should collapse, got %v", l.Get("report").Rect)
	}
}

func TestLayoutUnknownRegion(t *testing.T) {
	l := NewBuilder(80, 24).Remaining("all").Build()
	if got := l.Get("nope"); got.Name != "" || !got.Rect.Empty() {
		t.Errorf("unknown region should be zero, got %+v", got)
	}
}
