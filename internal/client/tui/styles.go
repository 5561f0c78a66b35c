package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/contentdesk/internal/client/models"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)
	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Padding(0, 1)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Padding(0, 1)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
	formStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	pendingBadge  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	approvedBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("77"))
	rejectedBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

func statusBadge(s models.Status) string {
	switch s {
	case models.StatusApproved:
		return approvedBadge.Render(string(s))
	case models.StatusRejected:
		return rejectedBadge.Render(string(s))
	default:
		return pendingBadge.Render(string(s))
	}
}
