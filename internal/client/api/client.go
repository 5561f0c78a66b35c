// Package api is the transport layer for the content approval service.
// It speaks the service's REST contract and translates transport failures
// into the client's error taxonomy.
package api

import (
	"context"

	"github.com/dmitrijs2005/contentdesk/internal/client/models"
)

// Client is the contract the remote content service exposes to the rest of
// the client. The server is the sole authority on authorization; every
// method after Login/Signup carries the bearer credential.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// Signup creates a new account. The caller logs in separately.
	Signup(ctx context.Context, email, password string) error

	// ListContent returns the caller's records, role-scoped by the server.
	ListContent(ctx context.Context) ([]models.ContentRecord, error)
	// ListRecent returns a bounded, server-ordered recency feed.
	ListRecent(ctx context.Context) ([]models.ContentRecord, error)
	// Search filters records by status and/or keyword; both optional.
	Search(ctx context.Context, status, keyword string) ([]models.ContentRecord, error)
	// Stats returns the server-computed status counts.
	Stats(ctx context.Context) (models.AggregateStats, error)

	// CreateContent submits a new record; it comes back pending.
	CreateContent(ctx context.Context, title, description string) (models.ContentRecord, error)
	// Approve and Reject transition a pending record to its terminal state.
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}
