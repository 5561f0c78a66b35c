// Package services contains the application services of the client.
// This file defines the content lifecycle service: listing, submission,
// and the pending → approved/rejected transitions.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contentdesk/internal/client/api"
	"github.com/dmitrijs2005/contentdesk/internal/client/models"
	"github.com/dmitrijs2005/contentdesk/internal/common"
)

// Action names a transition out of the pending state.
type Action string

const (
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Filter narrows ListAll. Zero values mean "no constraint"; keyword matching
// is the server's (case-insensitive substring over title and description).
type Filter struct {
	Status  models.Status
	Keyword string
}

func (f Filter) empty() bool {
	return f.Status == "" && f.Keyword == ""
}

// ContentService is the shared contract every view goes through for content
// records. The server enforces role scoping authoritatively; this layer only
// decides what to request and validates input before any network call.
//
// After a successful Transition the caller must re-fetch its view's data:
// stats and listings are server-derived projections the client cannot
// recompute.
type ContentService interface {
	ListOwn(ctx context.Context) ([]models.ContentRecord, error)
	ListAll(ctx context.Context, f Filter) ([]models.ContentRecord, error)
	ListRecent(ctx context.Context) ([]models.ContentRecord, error)
	Stats(ctx context.Context) (models.AggregateStats, error)
	Submit(ctx context.Context, title, description string) (models.ContentRecord, error)
	Transition(ctx context.Context, id string, action Action) error
}

type contentService struct {
	client api.Client
}

// NewContentService constructs a ContentService bound to the given API client.
func NewContentService(client api.Client) ContentService {
	return &contentService{client: client}
}

// ListOwn returns the caller's submissions in server-provided order.
func (s *contentService) ListOwn(ctx context.Context) ([]models.ContentRecord, error) {
	return s.client.ListContent(ctx)
}

// ListAll returns all records, optionally filtered. An empty filter fetches
// the unfiltered listing endpoint; otherwise the search endpoint is used.
func (s *contentService) ListAll(ctx context.Context, f Filter) ([]models.ContentRecord, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, f.Status)
	}
	if f.empty() {
		return s.client.ListContent(ctx)
	}
	return s.client.Search(ctx, string(f.Status), f.Keyword)
}

func (s *contentService) ListRecent(ctx context.Context) ([]models.ContentRecord, error) {
	return s.client.ListRecent(ctx)
}

func (s *contentService) Stats(ctx context.Context) (models.AggregateStats, error) {
	return s.client.Stats(ctx)
}

// Submit creates a new record. Both fields are required; validation happens
// before any network call.
func (s *contentService) Submit(ctx context.Context, title, description string) (models.ContentRecord, error) {
	if strings.TrimSpace(title) == "" {
		return models.ContentRecord{}, fmt.Errorf("%w: title must not be empty", common.ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return models.ContentRecord{}, fmt.Errorf("%w: description must not be empty", common.ErrValidation)
	}
	return s.client.CreateContent(ctx, title, description)
}

// Transition applies an approve/reject action to a pending record. On
// failure no local state is assumed; the caller simply retries or re-fetches.
func (s *contentService) Transition(ctx context.Context, id string, action Action) error {
	if id == "" {
		return fmt.Errorf("%w: record id must not be empty", common.ErrValidation)
	}
	switch action {
	case ActionApprove:
		return s.client.Approve(ctx, id)
	case ActionReject:
		return s.client.Reject(ctx, id)
	default:
		return fmt.Errorf("%w: unknown action %q", common.ErrValidation, action)
	}
}
