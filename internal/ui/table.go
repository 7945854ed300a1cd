package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// TableColumn defines a table column with name and width.
type TableColumn struct {
	Title string
	Width int
}

// NewTable creates a new Bubbles table with default styling.
func NewTable(columns []TableColumn, rows []table.Row) table.Model {
	cols := make([]table.Column, len(columns))
	for i, c := range columns {
		cols[i] = table.Column{
			Title: c.Title,
			Width: c.Width,
		}
	}

	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1), // +1 for header
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorNeonCyan)
	s.Cell = s.Cell.
		Foreground(ColorPrimary)
	// Unfocused tables still mark the first row as selected.
	s.Selected = s.Cell

	t.SetStyles(s)
	return t
}

// RenderSimpleTable renders a non-interactive table string.
// This is for CLI output (not TUI), producing a simple formatted table.
func RenderSimpleTable(columns []TableColumn, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	tableRows := make([]table.Row, len(rows))
	for i, row := range rows {
		tableRows[i] = table.Row(row)
	}

	return NewTable(columns, tableRows).View()
}

// CheckRow is one line of a validation report.
type CheckRow struct {
	Status     string // "pass", "warn", "fail"
	Message    string
	Suggestion string // shown unless the check passed
}

// RenderChecks renders check results under a title, one line per check.
func RenderChecks(title string, rows []CheckRow) string {
	if len(rows) == 0 {
		return "No checks to display\n"
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Render(title))
	b.WriteString("\n")

	for _, row := range rows {
		var icon string
		switch row.Status {
		case "pass":
			icon = SuccessStyle().Render(SymbolSuccess)
		case "warn":
			icon = WarningStyle().Render(SymbolWarning)
		default:
			icon = ErrorStyle().Render(SymbolFail)
		}

		b.WriteString("  " + icon + " " + row.Message + "\n")
		if row.Suggestion != "" && row.Status != "pass" {
			b.WriteString("    " + MutedStyle().Render(row.Suggestion) + "\n")
		}
	}

	return b.String()
}
