package selection

import (
	"errors"
	"fmt"
)

// Errors returned by the engine. Rejected selections and empty undos are
// not errors; they leave the state untouched and report accepted=false.
var (
	// ErrOutOfScope means a rotation would move a tile past the last cell.
	ErrOutOfScope = errors.New("selection: rotation out of scope")

	// ErrRotateUnavailable means rotate was called without a full selection
	// of at least four tiles.
	ErrRotateUnavailable = errors.New("selection: rotate needs a full selection of at least 4 tiles")

	// ErrInvalidConfig is wrapped by Config.Validate.
	ErrInvalidConfig = errors.New("selection: invalid config")
)

// rotateSpan is the number of leading selected tiles the rotate transform reads.
const rotateSpan = 4

// Config is the immutable board configuration of an Engine.
type Config struct {
	Size     int // Grid side length
	MaxTiles int // Maximum number of concurrently selected tiles
}

// Cells returns the total number of cells on the board.
func (c Config) Cells() int {
	return c.Size * c.Size
}

// Validate checks that the board is non-empty and MaxTiles fits on it.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalidConfig, c.Size)
	}
	if c.MaxTiles <= 0 {
		return fmt.Errorf("%w: max tiles must be positive, got %d", ErrInvalidConfig, c.MaxTiles)
	}
	if c.MaxTiles > c.Cells() {
		return fmt.Errorf("%w: max tiles %d exceeds %d cells", ErrInvalidConfig, c.MaxTiles, c.Cells())
	}
	return nil
}
