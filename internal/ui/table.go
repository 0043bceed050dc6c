package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable renders rows under headers as a bordered table.
func RenderTable(theme *Theme, headers []string, rows [][]string) string {
	if theme == nil {
		theme = NewTheme(ThemeConfig{NoColor: true})
	}

	header := theme.Style(theme.Colors.Primary).Bold(true).Padding(0, 1)
	cell := theme.Style(theme.Colors.Text).Padding(0, 1)
	border := theme.Style(theme.Colors.Border)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	return t.String()
}
