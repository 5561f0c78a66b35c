// Package guard decides whether a protected view may be shown to the current
// principal. It is the single place role checks live; views declare their
// permitted roles and dispatch on the returned Decision.
package guard

import "github.com/dmitrijs2005/contentdesk/internal/client/session"

// Decision is the outcome of an access check.
type Decision int

const (
	// Render shows the requested view.
	Render Decision = iota
	// RedirectToLogin sends an unauthenticated principal to authentication.
	RedirectToLogin
	// RedirectToDefault sends an authenticated but unauthorized principal to
	// the default landing view.
	RedirectToDefault
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case RedirectToLogin:
		return "redirect-to-login"
	case RedirectToDefault:
		return "redirect-to-default"
	}
	return "unknown"
}

// SessionSource yields the current session snapshot, or nil when logged out.
type SessionSource interface {
	Current() *session.Session
}

type Guard struct {
	sessions SessionSource
}

func New(sessions SessionSource) *Guard {
	return &Guard{sessions: sessions}
}

// Evaluate checks the current session against the view's permitted roles.
// The authentication check strictly precedes the role check, so an
// unauthenticated principal is always sent to login. An empty allowed set
// means any authenticated role. The decision is computed fresh on every
// call and must not be cached across navigations.
func (g *Guard) Evaluate(allowed ...session.Role) Decision {
	s := g.sessions.Current()
	if s == nil {
		return RedirectToLogin
	}
	if len(allowed) == 0 {
		return Render
	}
	for _, r := range allowed {
		if r == s.Role {
			return Render
		}
	}
	return RedirectToDefault
}
