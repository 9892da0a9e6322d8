package cellgrid

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

const (
	styleA StyleKey = iota
	styleB
)

func TestNewFillsWithSpaces(t *testing.T) {
	b := New(8, 3, styleA)
	if b.W != 8 || b.H != 3 {
		t.Fatalf("expected 8x3, got %dx%d", b.W, b.H)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 8; x++ {
			c := b.At(x, y)
			if c.Ch != ' ' || c.Style != styleA {
				t.Fatalf("cell (%d,%d): got %q/%d", x, y, c.Ch, c.Style)
			}
		}
	}
}

func TestNewClampsNegative(t *testing.T) {
	b := New(-4, -2, styleA)
	if b.W != 0 || b.H != 0 {
		t.Fatalf("expected 0x0, got %dx%d", b.W, b.H)
	}
	if b.Render(nil) != "" {
		t.Error("empty buffer should render to \"\"")
	}
}

func TestSetAndAt(t *testing.T) {
	b := New(8, 3, styleA)
	b.Set(2, 1, '#', styleB)
	c := b.At(2, 1)
	if c.Ch != '#' || c.Style != styleB {
		t.Errorf("got %q/%d, want '#'/styleB", c.Ch, c.Style)
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	b := New(4, 2, styleA)
	b.Set(-1, 0, 'X', styleB)
	b.Set(4, 0, 'X', styleB)
	b.Set(0, 2, 'X', styleB)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if b.At(x, y).Ch != ' ' {
				t.Fatalf("out-of-bounds write leaked into (%d,%d)", x, y)
			}
		}
	}
}

func TestSetStringClipped(t *testing.T) {
	b := New(6, 1, styleA)
	b.SetString(4, 0, "abcd", styleB)
	if b.At(4, 0).Ch != 'a' || b.At(5, 0).Ch != 'b' {
		t.Error("string start should be written")
	}
	// "cd" fell off the right edge; nothing to check but no panic.
}

func TestFillRectClipped(t *testing.T) {
	b := New(5, 5, styleA)
	b.FillRect(3, 3, 4, 4, '*', styleB)
	if b.At(3, 3).Ch != '*' || b.At(4, 4).Ch != '*' {
		t.Error("rect interior should be filled")
	}
	if b.At(2, 2).Ch != ' ' {
		t.Error("rect must not spill outside its bounds")
	}
}

func TestRenderMergesRuns(t *testing.T) {
	b := New(6, 1, styleA)
	b.SetString(0, 0, "aaabbb", styleA)
	b.Set(3, 0, 'b', styleB)
	b.Set(4, 0, 'b', styleB)
	b.Set(5, 0, 'b', styleB)

	styles := map[StyleKey]lipgloss.Style{
		styleA: lipgloss.NewStyle(),
		styleB: lipgloss.NewStyle(),
	}
	out := b.Render(styles)
	if !strings.Contains(out, "aaa") || !strings.Contains(out, "bbb") {
		t.Errorf("render lost content: %q", out)
	}
}

func TestRenderRowCount(t *testing.T) {
	b := New(3, 4, styleA)
	out := b.Render(map[StyleKey]lipgloss.Style{styleA: lipgloss.NewStyle()})
	if got := len(strings.Split(out, "\n")); got != 4 {
		t.Errorf("expected 4 lines, got %d", got)
	}
}
