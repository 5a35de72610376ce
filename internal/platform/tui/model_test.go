package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
)

var classic = config.Preset{ID: "classic", Title: "Classic 4x4", Size: 4, MaxTiles: 4}

func newTestModel(t *testing.T, p config.Preset) Model {
	t.Helper()
	m, err := NewModel(p, nil, core.DefaultConfig())
	if err != nil {
		t.Fatalf("NewModel failed: %v", err)
	}
	return m
}

// send feeds messages through Update and returns the resulting model.
func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, expected Model", next)
		}
	}
	return m
}

var (
	keyRight  = tea.KeyMsg{Type: tea.KeyRight}
	keyDown   = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft   = tea.KeyMsg{Type: tea.KeyLeft}
	keyUp     = tea.KeyMsg{Type: tea.KeyUp}
	keySelect = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestNewModelRejectsInvalidPreset(t *testing.T) {
	_, err := NewModel(config.Preset{ID: "bad", Size: 2, MaxTiles: 9}, nil, core.DefaultConfig())
	if err == nil {
		t.Error("expected error for invalid preset")
	}
}

func TestCursorMovementClamps(t *testing.T) {
	m := newTestModel(t, classic)

	m = send(t, m, keyLeft, keyUp)
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d, expected to stay at 0", m.Cursor())
	}

	m = send(t, m, keyRight, keyRight, keyDown)
	if m.Cursor() != 6 {
		t.Errorf("cursor = %d, expected 6", m.Cursor())
	}

	m = send(t, m, keyRight, keyRight, keyRight)
	if m.Cursor() != 7 {
		t.Errorf("cursor = %d, expected clamp at end of row (7)", m.Cursor())
	}
}

func TestSelectRunAndRotate(t *testing.T) {
	m := newTestModel(t, classic)

	m = send(t, m, keySelect, keyRight, keySelect, keyRight, keySelect, keyRight, keySelect)
	snap := m.Snapshot()
	if !reflect.DeepEqual(snap.Selection, []int{0, 1, 2, 3}) {
		t.Fatalf("Selection = %v, expected [0 1 2 3]", snap.Selection)
	}
	if !m.keys.Rotate.Enabled() {
		t.Error("rotate binding should be enabled with a full selection")
	}

	m = send(t, m, runeKey("r"))
	for _, idx := range []int{0, 4, 8, 12} {
		if !m.Snapshot().Checked(idx) {
			t.Errorf("cell %d should be checked after rotate", idx)
		}
	}
	if m.Status() != "" {
		t.Errorf("status = %q, expected none", m.Status())
	}
}

func TestRotateOutOfScopeShowsNotice(t *testing.T) {
	m := newTestModel(t, classic)

	// Bottom row: 12..15
	m = send(t, m, keyDown, keyDown, keyDown)
	m = send(t, m, keySelect, keyRight, keySelect, keyRight, keySelect, keyRight, keySelect)
	before := m.Snapshot()

	m = send(t, m, runeKey("r"))
	if m.Status() != OutOfScopeMessage {
		t.Errorf("status = %q, expected %q", m.Status(), OutOfScopeMessage)
	}
	if !reflect.DeepEqual(before, m.Snapshot()) {
		t.Error("failed rotate changed the board")
	}
	if !strings.Contains(m.View(), OutOfScopeMessage) {
		t.Error("view should show the out-of-scope notice")
	}

	// The notice is cleared by the next command.
	m = send(t, m, runeKey("u"))
	if m.Status() != "" {
		t.Errorf("status = %q after undo, expected none", m.Status())
	}
}

func TestUndoBindingFollowsSelection(t *testing.T) {
	m := newTestModel(t, classic)
	if m.keys.Undo.Enabled() {
		t.Error("undo should start disabled")
	}

	m = send(t, m, keySelect)
	if !m.keys.Undo.Enabled() {
		t.Error("undo should be enabled after a selection")
	}

	m = send(t, m, runeKey("u"))
	if len(m.Snapshot().Selection) != 0 {
		t.Errorf("Selection = %v after undo, expected empty", m.Snapshot().Selection)
	}
	if m.keys.Undo.Enabled() {
		t.Error("undo should be disabled again")
	}
}

func TestMouseClickSelectsTile(t *testing.T) {
	m := newTestModel(t, classic)

	click := func(index int) tea.MouseMsg {
		r := m.layout.TileRect(index)
		return tea.MouseMsg{
			X:      r.X + 1,
			Y:      r.Y + 1 + boardTop,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		}
	}

	m = send(t, m, click(5), click(9))
	if !reflect.DeepEqual(m.Snapshot().Selection, []int{5, 9}) {
		t.Errorf("Selection = %v, expected [5 9]", m.Snapshot().Selection)
	}
	if m.Cursor() != 9 {
		t.Errorf("cursor = %d, expected 9", m.Cursor())
	}

	// Releases and clicks outside the board are ignored.
	release := click(13)
	release.Action = tea.MouseActionRelease
	outside := tea.MouseMsg{X: 200, Y: 200, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	m = send(t, m, release, outside)
	if len(m.Snapshot().Selection) != 2 {
		t.Errorf("Selection = %v, expected unchanged", m.Snapshot().Selection)
	}
}

func TestResetStartsFreshBoard(t *testing.T) {
	m := newTestModel(t, classic)
	m = send(t, m, keySelect, keyRight, keySelect)

	m = send(t, m, runeKey("n"))
	if m.Snapshot().CheckedCount() != 0 || m.Cursor() != 0 {
		t.Errorf("reset left state: %+v cursor %d", m.Snapshot(), m.Cursor())
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, classic)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewShowsSelectionPanel(t *testing.T) {
	m := newTestModel(t, classic)
	m = send(t, m, keyDown, keySelect, keyRight, keySelect)

	view := m.View()
	for _, want := range []string{"Classic 4x4", "Selected 2/4", "Direction: right"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
