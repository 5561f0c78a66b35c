package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dmitrijs2005/contentdesk/internal/client/models"
	"github.com/dmitrijs2005/contentdesk/internal/client/services"
)

// Each command captures the epoch it was issued under. A command suspends
// only its own section: the bubbletea loop keeps serving other messages
// while the request is in flight.

func (a *App) loginCmd(email, password string) tea.Cmd {
	epoch := a.epoch
	a.inflight++
	return func() tea.Msg {
		token, err := a.auth.Login(a.ctx, email, password)
		if err != nil {
			return errMsg{epoch, err}
		}
		return loginDoneMsg{epoch, token}
	}
}

func (a *App) signupCmd(email, password string) tea.Cmd {
	epoch := a.epoch
	a.inflight++
	return func() tea.Msg {
		if err := a.auth.Signup(a.ctx, email, password); err != nil {
			return errMsg{epoch, err}
		}
		return signupDoneMsg{epoch}
	}
}

func (a *App) loadOwn() tea.Cmd {
	epoch := a.epoch
	a.inflight++
	return func() tea.Msg {
		recs, err := a.content.ListOwn(a.ctx)
		if err != nil {
			return errMsg{epoch, err}
		}
		return ownLoadedMsg{epoch, recs}
	}
}

func (a *App) loadAll() tea.Cmd {
	epoch := a.epoch
	a.inflight++
	filter := services.Filter{Status: a.statusFilter, Keyword: a.keywordInput.Value()}
	return func() tea.Msg {
		recs, err := a.content.ListAll(a.ctx, filter)
		if err != nil {
			return errMsg{epoch, err}
		}
		return allLoadedMsg{epoch, recs}
	}
}

func (a *App) loadRecent() tea.Cmd {
	epoch := a.epoch
	a.inflight++
	return func() tea.Msg {
		recs, err := a.content.ListRecent(a.ctx)
		if err != nil {
			return errMsg{epoch, err}
		}
		return recentLoadedMsg{epoch, recs}
	}
}

func (a *App) loadStats() tea.Cmd {
	epoch := a.epoch
	a.inflight++
	return func() tea.Msg {
		stats, err := a.content.Stats(a.ctx)
		if err != nil {
			return errMsg{epoch, err}
		}
		return statsLoadedMsg{epoch, stats}
	}
}

func (a *App) loadQueue() tea.Cmd {
	epoch := a.epoch
	a.inflight++
	return func() tea.Msg {
		recs, err := a.content.ListAll(a.ctx, services.Filter{Status: models.StatusPending})
		if err != nil {
			return errMsg{epoch, err}
		}
		return queueLoadedMsg{epoch, recs}
	}
}

func (a *App) submitCmd(title, description string) tea.Cmd {
	epoch := a.epoch
	a.inflight++
	return func() tea.Msg {
		rec, err := a.content.Submit(a.ctx, title, description)
		if err != nil {
			return errMsg{epoch, err}
		}
		return submitDoneMsg{epoch, rec}
	}
}

func (a *App) transitionCmd(id string, action services.Action) tea.Cmd {
	epoch := a.epoch
	a.inflight++
	return func() tea.Msg {
		if err := a.content.Transition(a.ctx, id, action); err != nil {
			return errMsg{epoch, err}
		}
		return transitionDoneMsg{epoch}
	}
}
