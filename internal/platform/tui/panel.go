package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/selection"
)

// newSelectionTable creates the side panel listing the selection order.
func newSelectionTable(maxTiles int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Tile", Width: 5},
		{Title: "Row", Width: 4},
		{Title: "Col", Width: 4},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(maxTiles+1), // One line for the header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.NoColor{}).
		Bold(false)
	t.SetStyles(s)

	return t
}

// selectionRows converts the snapshot's selection into table rows.
func selectionRows(s selection.Snapshot) []table.Row {
	rows := make([]table.Row, 0, len(s.Selection))
	for i, idx := range s.Selection {
		row, col := s.RowCol(idx)
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(idx),
			strconv.Itoa(row),
			strconv.Itoa(col),
		})
	}
	return rows
}
