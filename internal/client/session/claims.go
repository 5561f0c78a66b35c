package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/contentdesk/internal/common"
)

// UserClaim is the identity object the service embeds in its tokens.
type UserClaim struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Claims is the expected claim schema of a service-issued token: the
// registered claims plus a user object carrying role and email.
type Claims struct {
	jwt.RegisteredClaims
	User UserClaim `json:"user"`
}

// DecodeToken derives a Session from a bearer token. The signature is not
// verified here: the client never holds the signing key, and the server
// re-checks the token on every request. Decoding only establishes which
// views to offer.
//
// Any schema mismatch — unparseable token, missing expiry, expired token,
// unknown role — returns common.ErrAuthExpired so callers treat the
// credential as absent.
func DecodeToken(tokenString string, now time.Time) (*Session, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAuthExpired, err)
	}

	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: token has no expiry", common.ErrAuthExpired)
	}
	if !now.Before(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("%w: token expired at %s", common.ErrAuthExpired, claims.ExpiresAt.Time)
	}

	role := Role(claims.User.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", common.ErrAuthExpired, claims.User.Role)
	}

	return &Session{
		Token:     tokenString,
		Email:     claims.User.Email,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
