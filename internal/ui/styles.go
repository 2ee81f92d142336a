package ui

import "github.com/charmbracelet/lipgloss"

// ReportStyles groups the lipgloss styles used by the interval report.
type ReportStyles struct {
	// Title styles the per-pair report heading.
	Title lipgloss.Style
	// Header styles the table column headers.
	Header lipgloss.Style
	// Highlight styles the winning-interval rows.
	Highlight lipgloss.Style
	// Dim styles secondary information such as the host snapshot.
	Dim lipgloss.Style
}

// NewReportStyles builds the report styles for the active theme. When the
// no-color theme is active the styles render as plain text.
func NewReportStyles() ReportStyles {
	if CurrentTheme().Name == "none" {
		plain := lipgloss.NewStyle()
		return ReportStyles{Title: plain, Header: plain, Highlight: plain, Dim: plain}
	}
	return ReportStyles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header:    lipgloss.NewStyle().Underline(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
