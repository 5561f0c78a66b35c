// Package tui implements the terminal views of contentdesk: authentication,
// the contributor and moderator dashboards, the submission form, and the
// approvals queue. Views consume the core's contracts (session manager,
// access guard, content service) and never mutate session state directly.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/contentdesk/internal/client/api"
	"github.com/dmitrijs2005/contentdesk/internal/client/guard"
	"github.com/dmitrijs2005/contentdesk/internal/client/models"
	"github.com/dmitrijs2005/contentdesk/internal/client/services"
	"github.com/dmitrijs2005/contentdesk/internal/client/session"
	"github.com/dmitrijs2005/contentdesk/internal/common"
	"github.com/dmitrijs2005/contentdesk/internal/logging"
)

type viewState string

const (
	viewLogin     viewState = "login"
	viewSignup    viewState = "signup"
	viewDashboard viewState = "dashboard"
	viewSubmit    viewState = "submit"
	viewApprovals viewState = "approvals"
)

// allowedFor declares which roles may reach a protected view. An empty set
// means any authenticated role.
func allowedFor(v viewState) []session.Role {
	switch v {
	case viewSubmit:
		return []session.Role{session.RoleContributor}
	case viewApprovals:
		return []session.Role{session.RoleModerator}
	default:
		return nil
	}
}

// App ties together views.
type App struct {
	ctx      context.Context
	sessions *session.Manager
	guard    *guard.Guard
	content  services.ContentService
	auth     api.Client
	logger   logging.Logger

	state     viewState
	epoch     int
	inflight  int
	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool

	spin spinner.Model

	// auth form
	emailInput    textinput.Model
	passwordInput textinput.Model
	authFocus     int

	// submit form
	titleInput  textinput.Model
	descInput   textinput.Model
	submitFocus int

	// contributor dashboard
	own []models.ContentRecord

	// moderator dashboard
	stats        *models.AggregateStats
	all          []models.ContentRecord
	recent       []models.ContentRecord
	allTable     table.Model
	keywordInput textinput.Model
	statusFilter models.Status
	searching    bool

	// approvals queue
	queue      []models.ContentRecord
	queueTable table.Model
}

func NewApp(ctx context.Context, sessions *session.Manager, g *guard.Guard, content services.ContentService, auth api.Client, logger logging.Logger) *App {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128

	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 200

	desc := textinput.New()
	desc.Placeholder = "description"
	desc.CharLimit = 500

	keyword := textinput.New()
	keyword.Placeholder = "search by keyword"
	keyword.CharLimit = 128

	allTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 22},
			{Title: "Description", Width: 32},
			{Title: "Status", Width: 10},
			{Title: "Submitted By", Width: 22},
			{Title: "Actions", Width: 18},
		}),
		table.WithHeight(10),
		table.WithFocused(true),
	)

	queueTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Title", Width: 24},
			{Title: "Description", Width: 40},
			{Title: "Submitted By", Width: 24},
		}),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	return &App{
		ctx:           ctx,
		sessions:      sessions,
		guard:         g,
		content:       content,
		auth:          auth,
		logger:        logger,
		state:         viewLogin,
		spin:          spinner.New(spinner.WithSpinner(spinner.Dot)),
		emailInput:    email,
		passwordInput: password,
		titleInput:    title,
		descInput:     desc,
		keywordInput:  keyword,
		allTable:      allTable,
		queueTable:    queueTable,
	}
}

func (a *App) Init() tea.Cmd {
	return a.navigate(viewDashboard)
}

// navigate re-evaluates access on every transition to a protected view; the
// guard's decision is never cached. It also bumps the fetch epoch so replies
// belonging to the previous view are dropped.
func (a *App) navigate(v viewState) tea.Cmd {
	if (v == viewLogin || v == viewSignup) && a.sessions.Current() != nil {
		v = viewDashboard
	}
	if v != viewLogin && v != viewSignup {
		switch a.guard.Evaluate(allowedFor(v)...) {
		case guard.RedirectToLogin:
			v = viewLogin
		case guard.RedirectToDefault:
			v = viewDashboard
		}
	}

	a.state = v
	a.epoch++
	a.inflight = 0
	a.status, a.statusErr = "", false
	a.resetViewInputs(v)
	return a.loadsFor(v)
}

func (a *App) resetViewInputs(v viewState) {
	switch v {
	case viewLogin, viewSignup:
		a.emailInput.Reset()
		a.passwordInput.Reset()
		a.authFocus = 0
		a.emailInput.Focus()
		a.passwordInput.Blur()
	case viewSubmit:
		a.titleInput.Reset()
		a.descInput.Reset()
		a.submitFocus = 0
		a.titleInput.Focus()
		a.descInput.Blur()
	case viewDashboard:
		a.searching = false
		a.statusFilter = ""
		a.keywordInput.Reset()
		a.keywordInput.Blur()
	}
}

// loadsFor returns the data loads a view needs on entry or refresh.
func (a *App) loadsFor(v viewState) tea.Cmd {
	switch v {
	case viewDashboard:
		s := a.sessions.Current()
		if s == nil {
			return nil
		}
		if s.Role == session.RoleModerator {
			return tea.Batch(a.loadStats(), a.loadAll(), a.loadRecent(), a.spin.Tick)
		}
		return tea.Batch(a.loadOwn(), a.spin.Tick)
	case viewApprovals:
		return tea.Batch(a.loadQueue(), a.spin.Tick)
	case viewLogin, viewSignup, viewSubmit:
		return textinput.Blink
	}
	return nil
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

func (a *App) stale(epoch int) bool {
	return epoch != a.epoch
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case spinner.TickMsg:
		if a.inflight == 0 {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.updateKey(msg)

	case errMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		return a.handleError(msg.err)

	case loginDoneMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		s, err := a.sessions.Login(msg.token)
		if err != nil {
			// Undecodable token: fail to logged-out, never to a default role.
			a.logger.Warn(a.ctx, "login token rejected", "error", err)
			a.setStatus("Invalid credentials. Please try again.", true)
			return a, nil
		}
		cmd := a.navigate(viewDashboard)
		a.setStatus("Logged in as "+s.Email+" ("+string(s.Role)+")", false)
		return a, cmd

	case signupDoneMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		cmd := a.navigate(viewLogin)
		a.setStatus("Signup successful! Please log in.", false)
		return a, cmd

	case ownLoadedMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		a.own = msg.records
		return a, nil

	case allLoadedMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		a.all = msg.records
		a.allTable.SetRows(allRows(msg.records))
		return a, nil

	case recentLoadedMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		a.recent = msg.records
		return a, nil

	case statsLoadedMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		stats := msg.stats
		a.stats = &stats
		return a, nil

	case queueLoadedMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		a.queue = msg.records
		a.queueTable.SetRows(queueRows(msg.records))
		return a, nil

	case submitDoneMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		a.titleInput.Reset()
		a.descInput.Reset()
		a.submitFocus = 0
		a.titleInput.Focus()
		a.descInput.Blur()
		a.setStatus("Content submitted: \""+msg.record.Title+"\" is pending review.", false)
		return a, nil

	case transitionDoneMsg:
		if a.stale(msg.epoch) {
			return a, nil
		}
		a.inflight--
		// The refresh is issued only after the transition resolved; stats
		// and listings are re-fetched, never recomputed locally.
		a.setStatus("Record updated.", false)
		return a, a.loadsFor(a.state)
	}

	return a, nil
}

// handleError implements the failure policy: a 401/403 (or detected expiry)
// downgrades to logged-out and lands on the login view; everything else is an
// inline retryable message and the view keeps its last-known-good data.
func (a *App) handleError(err error) (tea.Model, tea.Cmd) {
	switch {
	case errors.Is(err, common.ErrAuthExpired):
		a.sessions.Logout()
		cmd := a.navigate(viewLogin)
		a.setStatus("Session expired. Please log in again.", true)
		return a, cmd
	case errors.Is(err, common.ErrAuthRejected):
		a.setStatus("Invalid credentials. Please try again.", true)
		return a, nil
	case errors.Is(err, common.ErrValidation):
		a.setStatus(err.Error(), true)
		return a, nil
	case errors.Is(err, common.ErrUnavailable):
		a.setStatus("Server unavailable. Press r to retry.", true)
		return a, nil
	default:
		a.setStatus("Request failed. Press r to retry.", true)
		return a, nil
	}
}

func (a *App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		a.quitting = true
		return a, tea.Quit
	case "ctrl+o":
		if a.sessions.Current() != nil {
			a.sessions.Logout()
			cmd := a.navigate(viewLogin)
			a.setStatus("Logged out.", false)
			return a, cmd
		}
	}

	switch a.state {
	case viewLogin, viewSignup:
		return a.updateAuthKey(msg)
	case viewSubmit:
		return a.updateSubmitKey(msg)
	case viewDashboard:
		return a.updateDashboardKey(msg)
	case viewApprovals:
		return a.updateApprovalsKey(msg)
	}
	return a, nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	var body string
	switch a.state {
	case viewLogin, viewSignup:
		body = a.renderAuth()
	case viewSubmit:
		body = a.renderSubmit()
	case viewDashboard:
		body = a.renderDashboard()
	case viewApprovals:
		body = a.renderApprovals()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.renderHeader(),
		body,
		a.renderStatusBar(),
	)
}

func (a *App) renderHeader() string {
	s := a.sessions.Current()
	left := titleStyle.Render("Content Desk")
	if s == nil {
		return headerStyle.Render(left + "  " + hintStyle.Render("login · ctrl+s signup · ctrl+c quit"))
	}

	hints := "d dashboard"
	switch s.Role {
	case session.RoleContributor:
		hints += " · s submit"
	case session.RoleModerator:
		hints += " · a approvals"
	}
	hints += " · r refresh · ctrl+o logout · q quit"
	return headerStyle.Render(left + "  " + s.Email + " (" + string(s.Role) + ")  " + hintStyle.Render(hints))
}

func (a *App) renderStatusBar() string {
	if a.inflight > 0 {
		return statusBarStyle.Render(a.spin.View() + " Loading...")
	}
	if a.status == "" {
		return statusBarStyle.Render("Ready")
	}
	if a.statusErr {
		return errorStyle.Render(a.status)
	}
	return statusBarStyle.Render(a.status)
}
