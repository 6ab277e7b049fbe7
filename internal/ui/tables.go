package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/vcstools/git-pr/internal/i18n"
	"github.com/vcstools/git-pr/internal/models"
)

var (
	tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	tableHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers []string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tableBorderStyle).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		}).
		Headers(headers...)
}

// RenderPRTable renders the open-PR listing as a rounded-border table.
func RenderPRTable(t *i18n.Translations, rows []models.PRRow) string {
	tbl := newTable([]string{
		t.GetMessage("table.header_number", 0, nil),
		t.GetMessage("table.header_title", 0, nil),
		t.GetMessage("table.header_author", 0, nil),
		t.GetMessage("table.header_age", 0, nil),
		t.GetMessage("table.header_commits", 0, nil),
		t.GetMessage("table.header_files", 0, nil),
		t.GetMessage("table.header_labels", 0, nil),
		t.GetMessage("table.header_description", 0, nil),
	})
	for _, row := range rows {
		tbl.Row(row.Number, row.Title, row.Author, row.Age, row.Commits, row.Files, row.Labels, row.Description)
	}
	return tbl.String()
}

// RenderDetailTable renders the single-PR detail view, one row per commit.
func RenderDetailTable(t *i18n.Translations, rows []models.DetailRow) string {
	tbl := newTable([]string{
		t.GetMessage("table.header_pr_number", 0, nil),
		t.GetMessage("table.header_title", 0, nil),
		t.GetMessage("table.header_status", 0, nil),
		t.GetMessage("table.header_age", 0, nil),
		t.GetMessage("table.header_authors", 0, nil),
		t.GetMessage("table.header_commit_sha", 0, nil),
		t.GetMessage("table.header_changed_files", 0, nil),
	})
	for _, row := range rows {
		tbl.Row(row.PRNumber, row.Title, row.Status, row.Age, row.Author, row.CommitSHA, row.ChangedFiles)
	}
	return tbl.String()
}
