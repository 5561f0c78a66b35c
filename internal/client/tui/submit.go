package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a *App) updateSubmitKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return a, a.navigate(viewDashboard)

	case "tab", "shift+tab", "up", "down":
		a.submitFocus = (a.submitFocus + 1) % 2
		if a.submitFocus == 0 {
			a.titleInput.Focus()
			a.descInput.Blur()
		} else {
			a.titleInput.Blur()
			a.descInput.Focus()
		}
		return a, textinput.Blink

	case "enter":
		if a.submitFocus == 0 {
			a.submitFocus = 1
			a.titleInput.Blur()
			a.descInput.Focus()
			return a, textinput.Blink
		}
		// Validation happens in the service, before any network call; an
		// empty field comes back as an inline message.
		return a, tea.Batch(a.submitCmd(a.titleInput.Value(), a.descInput.Value()), a.spin.Tick)
	}

	var cmd tea.Cmd
	if a.submitFocus == 0 {
		a.titleInput, cmd = a.titleInput.Update(msg)
	} else {
		a.descInput, cmd = a.descInput.Update(msg)
	}
	return a, cmd
}

func (a *App) renderSubmit() string {
	form := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Submit New Content"),
		"",
		"Title:       "+a.titleInput.View(),
		"Description: "+a.descInput.View(),
		"",
		hintStyle.Render("enter submit · tab next field · esc dashboard"),
	)
	return formStyle.Render(form)
}
