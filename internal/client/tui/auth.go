package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (a *App) updateAuthKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		a.authFocus = (a.authFocus + 1) % 2
		if a.authFocus == 0 {
			a.emailInput.Focus()
			a.passwordInput.Blur()
		} else {
			a.emailInput.Blur()
			a.passwordInput.Focus()
		}
		return a, textinput.Blink

	case "enter":
		email := strings.TrimSpace(a.emailInput.Value())
		password := a.passwordInput.Value()
		if email == "" || password == "" {
			a.setStatus("Email and password are required.", true)
			return a, nil
		}
		if a.state == viewLogin {
			return a, tea.Batch(a.loginCmd(email, password), a.spin.Tick)
		}
		return a, tea.Batch(a.signupCmd(email, password), a.spin.Tick)

	case "ctrl+s":
		if a.state == viewLogin {
			return a, a.navigate(viewSignup)
		}
		return a, a.navigate(viewLogin)
	}

	var cmd tea.Cmd
	if a.authFocus == 0 {
		a.emailInput, cmd = a.emailInput.Update(msg)
	} else {
		a.passwordInput, cmd = a.passwordInput.Update(msg)
	}
	return a, cmd
}

func (a *App) renderAuth() string {
	heading := "Login"
	hint := "enter submit · tab next field · ctrl+s signup instead"
	if a.state == viewSignup {
		heading = "Signup"
		hint = "enter submit · tab next field · ctrl+s login instead"
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(heading),
		"",
		"Email:    "+a.emailInput.View(),
		"Password: "+a.passwordInput.View(),
		"",
		hintStyle.Render(hint),
	)
	return formStyle.Render(form)
}
