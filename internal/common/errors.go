// Package common holds the error taxonomy shared by the client core.
package common

import "errors"

var (

	// session-specific errors

	// ErrAuthExpired marks a credential that is stale, undecodable, or no
	// longer accepted by the server. Callers downgrade to logged-out silently.
	ErrAuthExpired = errors.New("session expired")

	// ErrAuthRejected is returned when the server declines a login attempt.
	// The current session, if any, is left untouched.
	ErrAuthRejected = errors.New("invalid credentials")

	// content-specific errors

	ErrValidation    = errors.New("validation error")
	ErrRequestFailed = errors.New("request failed")
	ErrUnavailable   = errors.New("server unavailable")
)
