package selection

// Direction is the axis and sense a selection run is locked to.
// The zero value means no direction has been established yet.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionRight
	DirectionLeft
	DirectionUp
	DirectionDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionRight:
		return "right"
	case DirectionLeft:
		return "left"
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "unknown"
	}
}

// IsSet reports whether d is one of the four real directions.
func (d Direction) IsSet() bool {
	return d >= DirectionRight && d <= DirectionDown
}

// classify returns the direction of the move from last to index on a grid
// of the given side length. Moves that share neither row nor column yield
// DirectionNone.
func classify(size, last, index int) Direction {
	switch {
	case last/size == index/size:
		if index > last {
			return DirectionRight
		}
		return DirectionLeft
	case last%size == index%size:
		if index > last {
			return DirectionDown
		}
		return DirectionUp
	default:
		return DirectionNone
	}
}

// adjacent reports whether index is one step from last in direction d.
// With DirectionNone any of the four offsets (±1, ±size) is accepted; note
// that ±1 does not check for row wrap-around.
func adjacent(size, last, index int, d Direction) bool {
	switch d {
	case DirectionRight:
		return index-last == 1
	case DirectionLeft:
		return last-index == 1
	case DirectionUp:
		return last-index == size
	case DirectionDown:
		return index-last == size
	default:
		return index-last == 1 ||
			last-index == 1 ||
			last-index == size ||
			index-last == size
	}
}
