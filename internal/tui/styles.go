package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	urgentStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	overdueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	summaryStyle  = lipgloss.NewStyle().Faint(true)
)

// renderPage lays out a page with the shared title/body/help frame.
func renderPage(title, body, help string) string {
	out := titleStyle.Render(title) + "\n\n" + body
	if help != "" {
		out += "\n\n" + helpStyle.Render(help)
	}
	return appStyle.Render(out)
}
