package tui

import (
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/selection"
)

// Tile dimensions in terminal cells, border included.
const (
	tileW = 6
	tileH = 3
)

// Layout positions the tiles of a square board on a screen.
type Layout struct {
	X, Y int // Top-left corner of the first tile
	Size int // Board side length in tiles
}

// NewLayout creates a layout for a board of the given side length
// starting at the screen origin.
func NewLayout(size int) Layout {
	return Layout{Size: size}
}

// Bounds returns the rectangle covered by all tiles.
func (l Layout) Bounds() core.Rect {
	return core.NewRect(l.X, l.Y, l.Size*tileW, l.Size*tileH)
}

// TileRect returns the rectangle of the tile at index.
func (l Layout) TileRect(index int) core.Rect {
	row, col := index/l.Size, index%l.Size
	return core.NewRect(l.X+col*tileW, l.Y+row*tileH, tileW, tileH)
}

// HitTest returns the tile index under the screen point (x, y).
func (l Layout) HitTest(x, y int) (int, bool) {
	if !l.Bounds().Contains(x, y) {
		return 0, false
	}
	col := (x - l.X) / tileW
	row := (y - l.Y) / tileH
	return row*l.Size + col, true
}

// DrawBoard draws every tile of the snapshot. Checked tiles are filled,
// the cursor tile gets a highlighted border. A negative cursor draws none.
func DrawBoard(dst *core.Screen, l Layout, s selection.Snapshot, cursor int) {
	for i := range s.Cells {
		r := l.TileRect(i)

		border := core.ColorGray
		if s.Checked(i) {
			border = core.ColorGreen
			dst.DrawRect(r.Inset(1), '█', core.ColorBrightGreen)
		}
		if i == cursor {
			border = core.ColorYellow
		}
		dst.DrawBox(r, border)
	}
}

// BoardText renders the snapshot as plain text without a cursor.
func BoardText(s selection.Snapshot) string {
	l := NewLayout(s.Size)
	b := l.Bounds()
	screen := core.NewScreen(b.W, b.H)
	DrawBoard(screen, l, s, -1)
	return screen.String()
}
