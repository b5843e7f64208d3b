package pretty

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table is a header row plus data rows, rendered with box borders. With
// StatusColumn set (1-based), cells of that column are colored by status.
type Table struct {
	Headers      []string
	Rows         [][]string
	Style        BoxStyle
	StatusColumn int
}

func NewTable(headers ...string) *Table {
	return &Table{
		Headers: headers,
		Style:   ActiveBoxStyle(),
	}
}

// AddRow appends one row. Missing cells render empty, extra cells are dropped.
func (it *Table) AddRow(cells ...string) *Table {
	row := make([]string, len(it.Headers))
	copy(row, cells)
	it.Rows = append(it.Rows, row)
	return it
}

func (it *Table) Render() string {
	style := it.Style
	if style == (BoxStyle{}) {
		style = ActiveBoxStyle()
	}
	header := ActiveTheme.HeaderStyle()
	cell := lipgloss.NewStyle().Padding(0, 1)

	grid := table.New().
		Border(style.Border()).
		BorderStyle(ActiveTheme.BorderStyle()).
		Headers(it.Headers...).
		Rows(it.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if it.StatusColumn == col+1 && row >= 0 && row < len(it.Rows) {
				return ActiveTheme.StatusStyle(it.Rows[row][col])
			}
			return cell
		})
	return grid.Render() + "\n"
}
