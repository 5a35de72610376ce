package core

// Action represents a semantic board action, abstracted from physical key
// presses and mouse clicks.
type Action int

const (
	ActionNone        Action = iota
	ActionCursorUp           // Up arrow, k
	ActionCursorDown         // Down arrow, j
	ActionCursorLeft         // Left arrow, h
	ActionCursorRight        // Right arrow, l
	ActionSelect             // Space, Enter - select the tile under the cursor
	ActionUndo               // U, Backspace - delete last tile
	ActionRotate             // R - rotate tiles
	ActionReset              // N - start over with a fresh board
	ActionHelp               // ? - toggle full help
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionCursorRight:
		return "CursorRight"
	case ActionSelect:
		return "Select"
	case ActionUndo:
		return "Undo"
	case ActionRotate:
		return "Rotate"
	case ActionReset:
		return "Reset"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CursorDelta returns the (dx, dy) step of a cursor action, or (0, 0).
func (a Action) CursorDelta() (int, int) {
	switch a {
	case ActionCursorUp:
		return 0, -1
	case ActionCursorDown:
		return 0, 1
	case ActionCursorLeft:
		return -1, 0
	case ActionCursorRight:
		return 1, 0
	default:
		return 0, 0
	}
}
