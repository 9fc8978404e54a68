package cmd

import "github.com/charmbracelet/lipgloss"

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

func heading(s string) string {
	return headingStyle.Render(s)
}

func faint(s string) string {
	return faintStyle.Render(s)
}
