package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/contentdesk/internal/client/models"
	"github.com/dmitrijs2005/contentdesk/internal/client/services"
	"github.com/dmitrijs2005/contentdesk/internal/client/session"
)

func (a *App) updateDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := a.sessions.Current()
	if s == nil {
		return a, a.navigate(viewLogin)
	}

	if a.searching {
		switch msg.String() {
		case "enter":
			a.searching = false
			a.keywordInput.Blur()
			return a, tea.Batch(a.loadAll(), a.spin.Tick)
		case "esc":
			a.searching = false
			a.keywordInput.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.keywordInput, cmd = a.keywordInput.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit
	case "r":
		return a, a.loadsFor(viewDashboard)
	case "s":
		if s.Role == session.RoleContributor {
			return a, a.navigate(viewSubmit)
		}
	case "a":
		if s.Role == session.RoleModerator {
			return a, a.navigate(viewApprovals)
		}
	case "/":
		if s.Role == session.RoleModerator {
			a.searching = true
			a.keywordInput.Focus()
			return a, nil
		}
	case "f":
		if s.Role == session.RoleModerator {
			a.statusFilter = nextStatusFilter(a.statusFilter)
			return a, tea.Batch(a.loadAll(), a.spin.Tick)
		}
	case "y", "n":
		if s.Role == session.RoleModerator {
			return a.transitionSelected(msg.String() == "y")
		}
	}

	if s.Role == session.RoleModerator {
		var cmd tea.Cmd
		a.allTable, cmd = a.allTable.Update(msg)
		return a, cmd
	}
	return a, nil
}

// transitionSelected applies approve/reject to the highlighted listing row.
// Terminal records offer no actions: the key is a no-op for them.
func (a *App) transitionSelected(approve bool) (tea.Model, tea.Cmd) {
	idx := a.allTable.Cursor()
	if idx < 0 || idx >= len(a.all) {
		return a, nil
	}
	rec := a.all[idx]
	if rec.Status.Terminal() {
		a.setStatus("No actions for "+string(rec.Status)+" records.", false)
		return a, nil
	}
	action := services.ActionReject
	if approve {
		action = services.ActionApprove
	}
	return a, tea.Batch(a.transitionCmd(rec.ID, action), a.spin.Tick)
}

func nextStatusFilter(s models.Status) models.Status {
	switch s {
	case "":
		return models.StatusPending
	case models.StatusPending:
		return models.StatusApproved
	case models.StatusApproved:
		return models.StatusRejected
	default:
		return ""
	}
}

func allRows(records []models.ContentRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		actions := "-"
		if !rec.Status.Terminal() {
			actions = "y approve · n reject"
		}
		rows = append(rows, table.Row{rec.Title, rec.Description, string(rec.Status), rec.SubmitterLabel(), actions})
	}
	return rows
}

func (a *App) renderDashboard() string {
	s := a.sessions.Current()
	if s == nil {
		return ""
	}
	if s.Role == session.RoleModerator {
		return a.renderModeratorDashboard()
	}
	return a.renderContributorDashboard()
}

func (a *App) renderContributorDashboard() string {
	lines := []string{titleStyle.Render("Your Submissions"), ""}
	if len(a.own) == 0 {
		lines = append(lines, hintStyle.Render("You have no submissions yet."))
	}
	for _, rec := range a.own {
		lines = append(lines, fmt.Sprintf("%-30s %-12s %s", clip(rec.Title, 30), statusBadge(rec.Status), clip(rec.Description, 48)))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *App) renderModeratorDashboard() string {
	cards := "loading stats..."
	if a.stats != nil {
		cards = lipgloss.JoinHorizontal(lipgloss.Top,
			cardStyle.Render(fmt.Sprintf("Approved\n%d", a.stats.Approved)),
			cardStyle.Render(fmt.Sprintf("Pending\n%d", a.stats.Pending)),
			cardStyle.Render(fmt.Sprintf("Rejected\n%d", a.stats.Rejected)),
			cardStyle.Render(fmt.Sprintf("Total\n%d", a.stats.Total)),
		)
	}

	filter := "all"
	if a.statusFilter != "" {
		filter = string(a.statusFilter)
	}
	searchLine := fmt.Sprintf("Search: %s   Filter: %s   %s",
		a.keywordInput.View(), filter, hintStyle.Render("/ search · f cycle filter"))

	recentLines := []string{titleStyle.Render("Recent Activity")}
	for _, rec := range a.recent {
		recentLines = append(recentLines, fmt.Sprintf("%-28s %-12s %-24s %s",
			clip(rec.Title, 28), statusBadge(rec.Status), rec.SubmitterLabel(), rec.CreatedAt.Format("2006-01-02 15:04")))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Moderator Dashboard"),
		cards,
		searchLine,
		titleStyle.Render("All Submissions"),
		a.allTable.View(),
		lipgloss.JoinVertical(lipgloss.Left, recentLines...),
	)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
