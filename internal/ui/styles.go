package ui

import "github.com/charmbracelet/lipgloss"

var (
	clockStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))
	greetingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("189"))
	dateStyle     = lipgloss.NewStyle().Faint(true)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	focusedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("111")).
			Padding(0, 1)
	alertStyle = modalStyle.BorderForeground(lipgloss.Color("203"))
)

func sectionTitle(title string, focused bool) string {
	if focused {
		return focusedStyle.Render("▸ " + title)
	}
	return sectionStyle.Render("  " + title)
}
