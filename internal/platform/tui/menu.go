package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
)

// MenuKeyMap defines the key bindings for the preset picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
)

// MenuModel is the Bubble Tea model for the preset picker.
type MenuModel struct {
	presets  []config.Preset
	cursor   int
	width    int
	keys     MenuKeyMap
	quitting bool
	selected *config.Preset // Set when user picks a preset
}

// NewMenuModel creates a picker over the configured presets, with the
// cursor on the default preset.
func NewMenuModel(cfg config.Config, rc core.RuntimeConfig) MenuModel {
	m := MenuModel{
		presets: cfg.Presets,
		width:   rc.ScreenW,
		keys:    DefaultMenuKeyMap(),
	}
	for i, p := range cfg.Presets {
		if p.ID == cfg.DefaultPreset {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.presets) > 0 {
			selected := m.presets[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to open the board
		}
	}

	return m, nil
}

// Selected returns the picked preset, or nil if the user quit.
func (m MenuModel) Selected() *config.Preset {
	return m.selected
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  T I L E S  "))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := fmt.Sprintf("%-16s %dx%d, %d tiles", p.Title, p.Size, p.Size, p.MaxTiles)
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render("> " + line))
		} else {
			b.WriteString(menuItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("up/down: choose  enter: play  q: quit"))
	return b.String()
}

// RunMenu shows the preset picker and returns the chosen preset.
// Returns nil if the user quit without choosing.
func RunMenu(cfg config.Config, rc core.RuntimeConfig) (*config.Preset, error) {
	p := tea.NewProgram(NewMenuModel(cfg, rc), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("menu error: %w", err)
	}

	m, ok := final.(MenuModel)
	if !ok {
		return nil, nil
	}
	return m.Selected(), nil
}
