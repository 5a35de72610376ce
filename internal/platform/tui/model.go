// Package tui provides the Bubble Tea front end for the tile board.
// It maps keys and mouse clicks to engine commands and redraws from the
// snapshot each command returns.
package tui

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/selection"
)

// OutOfScopeMessage is shown when a rotation would leave the board.
const OutOfScopeMessage = "Rotation out of scope"

// boardTop is the screen row of the board: title line plus one blank line.
const boardTop = 2

// Model is the Bubble Tea model for the tile board.
type Model struct {
	preset   config.Preset
	engine   *selection.Engine
	snap     selection.Snapshot
	layout   Layout
	screen   *core.Screen
	cursor   int
	keys     BoardKeyMap
	help     help.Model
	panel    table.Model
	logger   *log.Logger
	status   string
	width    int
	height   int
	quitting bool
}

// NewModel creates a board model for the given preset.
func NewModel(preset config.Preset, logger *log.Logger, cfg core.RuntimeConfig) (Model, error) {
	engine, err := selection.New(preset.Board())
	if err != nil {
		return Model{}, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	layout := NewLayout(preset.Size)
	bounds := layout.Bounds()

	m := Model{
		preset: preset,
		engine: engine,
		layout: layout,
		screen: core.NewScreen(bounds.W, bounds.H),
		keys:   DefaultBoardKeyMap(),
		help:   help.New(),
		panel:  newSelectionTable(preset.MaxTiles),
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW
	m.sync()
	return m, nil
}

// Init implements tea.Model. The board is event driven and needs no
// startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.apply(m.keys.Action(msg))

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleMouse selects the tile under a left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	index, ok := m.layout.HitTest(msg.X, msg.Y-boardTop)
	if !ok {
		return m, nil
	}
	m.cursor = index
	m.selectTile(index)
	return m, nil
}

// apply runs one board action.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionCursorUp, core.ActionCursorDown, core.ActionCursorLeft, core.ActionCursorRight:
		dx, dy := action.CursorDelta()
		size := m.preset.Size
		col := core.Clamp(m.cursor%size+dx, 0, size-1)
		row := core.Clamp(m.cursor/size+dy, 0, size-1)
		m.cursor = row*size + col

	case core.ActionSelect:
		m.selectTile(m.cursor)

	case core.ActionUndo:
		m.status = ""
		snap, ok := m.engine.Undo()
		m.logger.Debug("undo", "accepted", ok, "selected", len(snap.Selection), "direction", snap.Direction)
		m.sync()

	case core.ActionRotate:
		m.rotate()

	case core.ActionReset:
		m.reset()

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *Model) selectTile(index int) {
	m.status = ""
	snap, ok := m.engine.Select(index)
	m.logger.Debug("select", "index", index, "accepted", ok, "selected", len(snap.Selection), "direction", snap.Direction)
	m.sync()
}

func (m *Model) rotate() {
	m.status = ""
	_, err := m.engine.Rotate()
	switch {
	case errors.Is(err, selection.ErrOutOfScope):
		m.status = OutOfScopeMessage
		m.logger.Warn("rotate out of scope", "selection", m.snap.Selection)
	case err != nil:
		m.logger.Debug("rotate ignored", "error", err)
	default:
		m.logger.Debug("rotate", "selection", m.snap.Selection)
	}
	m.sync()
}

// reset replaces the engine with a fresh one for the same preset.
func (m *Model) reset() {
	engine, err := selection.New(m.preset.Board())
	if err != nil {
		// The preset was validated when the model was built.
		m.logger.Error("reset failed", "error", err)
		return
	}
	m.engine = engine
	m.cursor = 0
	m.status = ""
	m.logger.Debug("reset", "preset", m.preset.ID)
	m.sync()
}

// sync refreshes everything derived from the engine state.
func (m *Model) sync() {
	m.snap = m.engine.Snapshot()
	m.keys.Undo.SetEnabled(m.snap.CanUndo)
	m.keys.Rotate.SetEnabled(m.snap.CanRotate)
	m.panel.SetRows(selectionRows(m.snap))
}

// Snapshot returns the engine state shown by the model.
func (m Model) Snapshot() selection.Snapshot {
	return m.snap
}

// Cursor returns the index of the highlighted tile.
func (m Model) Cursor() int {
	return m.cursor
}

// Status returns the current notice line, empty when there is none.
func (m Model) Status() string {
	return m.status
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	DrawBoard(m.screen, m.layout, m.snap, m.cursor)

	title := titleStyle.Render(fmt.Sprintf("Tiles · %s", m.preset.Title))

	side := lipgloss.JoinVertical(lipgloss.Left,
		labelStyle.Render(fmt.Sprintf("Selected %d/%d", len(m.snap.Selection), m.snap.MaxTiles)),
		m.panel.View(),
		labelStyle.Render("Direction: "+m.snap.Direction.String()),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, RenderScreen(m.screen), "   ", side)

	status := ""
	if m.status != "" {
		status = noticeStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		status,
		m.help.View(m.keys),
	)
}

// Run starts the Bubble Tea program for the given preset.
func Run(preset config.Preset, logger *log.Logger, cfg core.RuntimeConfig) error {
	model, err := NewModel(preset, logger, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks select tiles
	)

	_, err = p.Run()
	return err
}
