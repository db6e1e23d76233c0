package tui

import (
	"strings"

	"zoomctl/pkg/query"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RenderTable lays out rows as a bordered table with the given columns.
// Courses with several slots get one line per slot in the time column.
func RenderTable(rows []query.Row, cols []query.Attribute) string {
	title := cases.Title(language.English)

	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = title.String(strings.ReplaceAll(c.String(), "-", " "))
	}

	headerStyle := accentStyle.Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, r := range rows {
		values := make([]string, len(cols))
		for i, c := range cols {
			values[i] = r.Field(c)
		}
		t.Row(values...)
	}

	return t.Render()
}
