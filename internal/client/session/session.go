// Package session owns the single process-wide session value: the persisted
// bearer credential, the identity derived from it, and the restore, login and
// logout transitions. No other package writes session state.
package session

import "time"

// Role is the closed set of principal roles the service recognizes.
type Role string

const (
	RoleContributor Role = "contributor"
	RoleModerator   Role = "moderator"
)

// Valid reports whether r is a known role. Anything else fails closed:
// a credential carrying an unknown role yields no session at all.
func (r Role) Valid() bool {
	return r == RoleContributor || r == RoleModerator
}

// Session is an authenticated principal. Role and ExpiresAt are derived from
// the token's claims and never stored independently.
type Session struct {
	Token     string
	Email     string
	Role      Role
	ExpiresAt time.Time
}

// Expired reports whether the session is no longer valid at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
