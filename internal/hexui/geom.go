package hexui

import (
	"image"

	"github.com/wesen/hexvis/pkg/boardmodel"
	"github.com/wesen/hexvis/pkg/hexboard"
)

// Tile cell geometry in terminal cells. Columns are one gap apart; rows
// within a column are two rows apart so short columns can shift down by
// whole rows to keep the hexagon silhouette centered.
const (
	tileW     = 4
	tileH     = 1
	colStride = tileW + 1
	rowStride = 2
)

// tileBox is one clickable tile rectangle in screen coordinates.
type tileBox struct {
	ID   int
	X, Y int
}

func (t tileBox) Pos() image.Point  { return image.Pt(t.X, t.Y) }
func (t tileBox) Size() image.Point { return image.Pt(tileW, tileH) }

// boardExtent returns the pixel size of the fully laid-out board.
func boardExtent(b *hexboard.Board) image.Point {
	maxRows := 0
	for col := 0; col < b.NumCols(); col++ {
		if r := b.RowsInCol(col); r > maxRows {
			maxRows = r
		}
	}
	w := b.NumCols()*colStride - 1
	h := (maxRows-1)*rowStride + tileH
	return image.Pt(w, h)
}

// buildTileIndex lays every tile out inside the canvas rect (board
// centered, clamped to the top-left when the canvas is too small) and
// returns a spatial index for click resolution.
func buildTileIndex(b *hexboard.Board, canvas image.Rectangle) *boardmodel.Index[tileBox] {
	ext := boardExtent(b)
	ox := canvas.Min.X + (canvas.Dx()-ext.X)/2
	oy := canvas.Min.Y + (canvas.Dy()-ext.Y)/2
	if ox < canvas.Min.X {
		ox = canvas.Min.X
	}
	if oy < canvas.Min.Y {
		oy = canvas.Min.Y
	}

	maxRows := 0
	for col := 0; col < b.NumCols(); col++ {
		if r := b.RowsInCol(col); r > maxRows {
			maxRows = r
		}
	}

	ix := boardmodel.NewIndex[tileBox](b.NumTiles())
	for _, id := range b.Tiles() {
		pos, _ := b.PlacementOf(id)
		// Shift short columns down by half their row deficit, in whole
		// row-stride halves, to center them vertically.
		shift := maxRows - b.RowsInCol(pos.Col)
		ix.Add(tileBox{
			ID: id,
			X:  ox + pos.Col*colStride,
			Y:  oy + shift + pos.Row*rowStride,
		})
	}
	return ix
}
