// hexvis — interactive hexagon grid visualizer.
//
// Renders the radius-3 hexagon board in the terminal; clicking a tile
// highlights its precomputed neighborhood, and a side panel shows the
// startup verification of the adjacency tables.
//
// Run: go run ./cmd/hexvis/   (or hexvis -check for a headless report)
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/wesen/hexvis/internal/hexui"
	"github.com/wesen/hexvis/internal/verify"
	"github.com/wesen/hexvis/pkg/hexboard"
)

func main() {
	check := flag.Bool("check", false, "verify the adjacency tables, print a report, and exit")
	flag.Parse()

	if *check {
		os.Exit(runCheck(os.Stdout))
	}

	p := tea.NewProgram(hexui.NewModel())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runCheck prints one line per fixture and returns the process exit code.
func runCheck(w io.Writer) int {
	board := hexboard.Default()
	results := verify.Run(board, verify.DefaultCases())

	for _, r := range results {
		if r.Pass {
			fmt.Fprintf(w, "  [PASS] Tile %d\n", r.Tile)
			continue
		}
		fmt.Fprintf(w, "  [FAIL] Tile %d\n", r.Tile)
		fmt.Fprintf(w, "    - Expected: %v\n", r.Expected)
		fmt.Fprintf(w, "    - Actual:   %v\n", r.Actual)
	}

	if !verify.AllPass(results) {
		return 1
	}
	return 0
}
