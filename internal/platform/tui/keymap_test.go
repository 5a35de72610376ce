package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestBoardKeyMapAction(t *testing.T) {
	k := DefaultBoardKeyMap()
	k.Undo.SetEnabled(true)
	k.Rotate.SetEnabled(true)

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionCursorUp},
		{"vim down", runeKey("j"), core.ActionCursorDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionCursorLeft},
		{"vim right", runeKey("l"), core.ActionCursorRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionSelect},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionSelect},
		{"undo", runeKey("u"), core.ActionUndo},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionUndo},
		{"rotate", runeKey("r"), core.ActionRotate},
		{"reset", runeKey("n"), core.ActionReset},
		{"help", runeKey("?"), core.ActionHelp},
		{"quit", runeKey("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := k.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestDisabledBindingsDoNotMatch(t *testing.T) {
	k := DefaultBoardKeyMap()

	if got := k.Action(runeKey("u")); got != core.ActionNone {
		t.Errorf("disabled undo mapped to %v", got)
	}
	if got := k.Action(runeKey("r")); got != core.ActionNone {
		t.Errorf("disabled rotate mapped to %v", got)
	}
}
