// Package selection implements the tile selection state machine: a chain of
// orthogonally adjacent tiles on a square board, locked to one direction
// once two tiles are chosen, with undo and a fixed rotate transform.
//
// The package has no terminal or rendering dependencies. Front ends send
// commands and redraw from the returned Snapshot.
package selection

// Engine owns the board state for one widget. It is not safe for
// concurrent use; commands are expected to arrive one at a time.
type Engine struct {
	cfg       Config
	cells     []bool
	selected  []int
	direction Direction
}

// New creates an engine with every cell unchecked.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		cells:    make([]bool, cfg.Cells()),
		selected: make([]int, 0, cfg.MaxTiles),
	}, nil
}

// Config returns the board configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Select tries to check the cell at index. The returned flag is false when
// the move was rejected, in which case the state is unchanged.
func (e *Engine) Select(index int) (Snapshot, bool) {
	if !e.accepts(index) {
		return e.Snapshot(), false
	}

	if len(e.selected) > 0 {
		candidate := classify(e.cfg.Size, e.last(), index)
		if e.direction == DirectionNone && candidate != DirectionNone {
			e.direction = candidate
		}
	}

	e.cells[index] = true
	e.selected = append(e.selected, index)
	return e.Snapshot(), true
}

// accepts applies the select guards and the adjacency/direction rules.
func (e *Engine) accepts(index int) bool {
	if index < 0 || index >= len(e.cells) {
		return false
	}
	if e.cells[index] || len(e.selected) >= e.cfg.MaxTiles {
		return false
	}
	if len(e.selected) == 0 {
		return true
	}

	size, last := e.cfg.Size, e.last()
	if e.direction != DirectionNone {
		candidate := classify(size, last, index)
		return candidate == e.direction && adjacent(size, last, index, candidate)
	}
	return adjacent(size, last, index, DirectionNone)
}

// Undo unchecks the most recently selected cell. Dropping from two tiles to
// one clears the locked direction. Returns false if nothing was selected.
func (e *Engine) Undo() (Snapshot, bool) {
	n := len(e.selected)
	if n == 0 {
		return e.Snapshot(), false
	}

	e.cells[e.selected[n-1]] = false
	e.selected = e.selected[:n-1]
	if n == 2 {
		e.direction = DirectionNone
	}
	return e.Snapshot(), true
}

// Rotate turns a rightward run into a column: the second, third and fourth
// selected tiles move by 1, 2 and 3 times (size-1). The first tile stays.
//
// Only the cell flags change. The selection order and direction keep the
// pre-rotation indices, so a later Undo unchecks the original last tile.
//
// Returns ErrRotateUnavailable when CanRotate is false or fewer than four
// tiles are selected, and ErrOutOfScope when a target falls off the board.
// The state is unchanged on error.
func (e *Engine) Rotate() (Snapshot, error) {
	if !e.CanRotate() || len(e.selected) < rotateSpan {
		return e.Snapshot(), ErrRotateUnavailable
	}

	step := e.cfg.Size - 1
	from := e.selected[1:rotateSpan]
	to := make([]int, len(from))
	for i, idx := range from {
		to[i] = idx + (i+1)*step
		if to[i] >= len(e.cells) {
			return e.Snapshot(), ErrOutOfScope
		}
	}

	for _, idx := range from {
		e.cells[idx] = false
	}
	for _, idx := range to {
		e.cells[idx] = true
	}
	return e.Snapshot(), nil
}

// CanRotate reports whether exactly MaxTiles tiles are selected.
func (e *Engine) CanRotate() bool {
	return len(e.selected) == e.cfg.MaxTiles
}

// CanUndo reports whether at least one tile is selected.
func (e *Engine) CanUndo() bool {
	return len(e.selected) > 0
}

// Direction returns the locked direction, or DirectionNone.
func (e *Engine) Direction() Direction {
	return e.direction
}

func (e *Engine) last() int {
	return e.selected[len(e.selected)-1]
}
