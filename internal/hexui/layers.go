package hexui

import (
	"fmt"
	"image"

	"charm.land/lipgloss/v2"

	"github.com/wesen/hexvis/pkg/boardmodel"
	"github.com/wesen/hexvis/pkg/cellgrid"
	"github.com/wesen/hexvis/pkg/hexboard"
	"github.com/wesen/hexvis/pkg/hexdraw"
)

// buildTileLayers creates one layer per tile, styled by highlight state.
func buildTileLayers(ix *boardmodel.Index[tileBox], assign hexboard.Assignment,
	canvas image.Rectangle) []*lipgloss.Layer {

	var layers []*lipgloss.Layer
	for _, tile := range ix.Items() {
		rect := boardmodel.Bounds(tile)
		if !rect.Overlaps(canvas) {
			continue
		}

		style := tileStyleNone
		switch assign.State(tile.ID) {
		case hexboard.HighlightCenter:
			style = tileStyleCenter
		case hexboard.HighlightAffected:
			style = tileStyleAffected
		}

		label := fmt.Sprintf("%*d ", tileW-1, tile.ID)
		layers = append(layers, lipgloss.NewLayer(style.Render(label)).
			X(tile.X).Y(tile.Y).Z(2).
			ID(fmt.Sprintf("tile-%d", tile.ID)))
	}
	return layers
}

// buildCanvasLayer paints the canvas background and, when the overlay is
// on and a tile is selected, the lines from the center to each affected
// tile. Returned as a single Z=0 layer under the tiles.
func buildCanvasLayer(ix *boardmodel.Index[tileBox], assign hexboard.Assignment,
	canvas image.Rectangle, showEdges bool) *lipgloss.Layer {

	w, h := canvas.Dx(), canvas.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(canvas.Min.X).Y(canvas.Min.Y).Z(0).ID("canvas")
	}

	buf := cellgrid.New(w, h, styleCanvasBG)

	if showEdges {
		if from, ok := centerPoint(ix, assign); ok {
			for _, tile := range ix.Items() {
				if assign.State(tile.ID) != hexboard.HighlightAffected {
					continue
				}
				to := boardmodel.Center(tile)
				hexdraw.ArrowLine(buf,
					from.X-canvas.Min.X, from.Y-canvas.Min.Y,
					to.X-canvas.Min.X, to.Y-canvas.Min.Y,
					styleEdge, styleEdgeHead)
			}
		}
	}

	return lipgloss.NewLayer(buf.Render(canvasBufStyles)).
		X(canvas.Min.X).Y(canvas.Min.Y).Z(0).ID("canvas")
}

// centerPoint finds the screen center of the selected tile, if any.
func centerPoint(ix *boardmodel.Index[tileBox], assign hexboard.Assignment) (image.Point, bool) {
	id, ok := assign.Center()
	if !ok {
		return image.Point{}, false
	}
	for _, tile := range ix.Items() {
		if tile.ID == id {
			return boardmodel.Center(tile), true
		}
	}
	return image.Point{}, false
}
