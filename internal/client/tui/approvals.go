package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/contentdesk/internal/client/models"
	"github.com/dmitrijs2005/contentdesk/internal/client/services"
)

func (a *App) updateApprovalsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		a.quitting = true
		return a, tea.Quit
	case "d", "esc":
		return a, a.navigate(viewDashboard)
	case "r":
		return a, a.loadsFor(viewApprovals)
	case "y", "n":
		idx := a.queueTable.Cursor()
		if idx < 0 || idx >= len(a.queue) {
			return a, nil
		}
		action := services.ActionReject
		if msg.String() == "y" {
			action = services.ActionApprove
		}
		return a, tea.Batch(a.transitionCmd(a.queue[idx].ID, action), a.spin.Tick)
	}

	var cmd tea.Cmd
	a.queueTable, cmd = a.queueTable.Update(msg)
	return a, cmd
}

func queueRows(records []models.ContentRecord) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, table.Row{rec.Title, rec.Description, rec.SubmitterLabel()})
	}
	return rows
}

func (a *App) renderApprovals() string {
	if len(a.queue) == 0 {
		return lipgloss.NewStyle().Padding(1, 2).Render(
			titleStyle.Render("Pending Submissions") + "\n\n" +
				hintStyle.Render("No pending content to approve."))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Pending Submissions"),
		a.queueTable.View(),
		hintStyle.Render("y approve · n reject · r refresh · d dashboard"),
	)
}
