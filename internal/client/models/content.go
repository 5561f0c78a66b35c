// Package models defines the content record types exchanged with the
// approval service.
package models

import "time"

// Status classifies a content record within the approval workflow.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is one of the known workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
// Only pending records may be approved or rejected.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Submitter identifies the account that created a record. The service
// exposes only a display label for it.
type Submitter struct {
	Email string `json:"email"`
}

// ContentRecord is a transient client-side copy of a record owned by the
// remote store. Field names follow the service's wire format.
type ContentRecord struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      Status     `json:"status"`
	CreatedBy   *Submitter `json:"createdBy,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// SubmitterLabel returns the submitter's display form, or "N/A" when the
// service omitted it.
func (r ContentRecord) SubmitterLabel() string {
	if r.CreatedBy == nil || r.CreatedBy.Email == "" {
		return "N/A"
	}
	return r.CreatedBy.Email
}

// AggregateStats is the server-computed projection of record counts by
// status. The client displays it as-is and never recomputes it locally.
type AggregateStats struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}
