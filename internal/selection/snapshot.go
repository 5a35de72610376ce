package selection

// Snapshot is an immutable copy of the engine state after a command.
type Snapshot struct {
	Size      int
	MaxTiles  int
	Cells     []bool    // Checked flag per cell, row-major
	Selection []int     // Selected indices in selection order
	Direction Direction // Locked direction, DirectionNone if unset
	CanUndo   bool
	CanRotate bool
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	cells := make([]bool, len(e.cells))
	copy(cells, e.cells)
	sel := make([]int, len(e.selected))
	copy(sel, e.selected)

	return Snapshot{
		Size:      e.cfg.Size,
		MaxTiles:  e.cfg.MaxTiles,
		Cells:     cells,
		Selection: sel,
		Direction: e.direction,
		CanUndo:   e.CanUndo(),
		CanRotate: e.CanRotate(),
	}
}

// Checked reports whether the cell at index is checked.
// Out-of-range indices report false.
func (s Snapshot) Checked(index int) bool {
	if index < 0 || index >= len(s.Cells) {
		return false
	}
	return s.Cells[index]
}

// CheckedCount returns the number of checked cells.
func (s Snapshot) CheckedCount() int {
	n := 0
	for _, c := range s.Cells {
		if c {
			n++
		}
	}
	return n
}

// RowCol converts a cell index into its row and column.
func (s Snapshot) RowCol(index int) (row, col int) {
	return index / s.Size, index % s.Size
}

// Order returns the 1-based position of index in the selection, or 0 if
// the index is not part of it.
func (s Snapshot) Order(index int) int {
	for i, idx := range s.Selection {
		if idx == index {
			return i + 1
		}
	}
	return 0
}
