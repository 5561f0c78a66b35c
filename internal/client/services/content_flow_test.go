package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/contentdesk/internal/client/api"
	"github.com/dmitrijs2005/contentdesk/internal/client/models"
	"github.com/dmitrijs2005/contentdesk/internal/logging"
)

// contentStore is a minimal stand-in for the remote service, enough to
// exercise the submit → approve → stats workflow end to end over HTTP.
type contentStore struct {
	mu      sync.Mutex
	nextID  int
	records []models.ContentRecord
}

func (s *contentStore) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /content", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Title, Description string }
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		s.nextID++
		rec := models.ContentRecord{
			ID:          fmt.Sprintf("rec-%03d", s.nextID),
			Title:       in.Title,
			Description: in.Description,
			Status:      models.StatusPending,
			CreatedBy:   &models.Submitter{Email: "alice@example.com"},
			CreatedAt:   time.Now().UTC(),
		}
		s.records = append(s.records, rec)
		s.mu.Unlock()
		json.NewEncoder(w).Encode(rec)
	})

	mux.HandleFunc("GET /content", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		json.NewEncoder(w).Encode(s.records)
	})

	mux.HandleFunc("GET /content/search", func(w http.ResponseWriter, r *http.Request) {
		status := r.URL.Query().Get("status")
		s.mu.Lock()
		defer s.mu.Unlock()
		out := []models.ContentRecord{}
		for _, rec := range s.records {
			if status == "" || string(rec.Status) == status {
				out = append(out, rec)
			}
		}
		json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("GET /content/stats", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		var stats models.AggregateStats
		for _, rec := range s.records {
			switch rec.Status {
			case models.StatusApproved:
				stats.Approved++
			case models.StatusPending:
				stats.Pending++
			case models.StatusRejected:
				stats.Rejected++
			}
			stats.Total++
		}
		json.NewEncoder(w).Encode(stats)
	})

	mux.HandleFunc("PUT /content/{id}/{action}", func(w http.ResponseWriter, r *http.Request) {
		id, action := r.PathValue("id"), r.PathValue("action")
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.records {
			if s.records[i].ID != id {
				continue
			}
			if s.records[i].Status != models.StatusPending {
				w.WriteHeader(http.StatusConflict)
				return
			}
			switch action {
			case "approve":
				s.records[i].Status = models.StatusApproved
			case "reject":
				s.records[i].Status = models.StatusRejected
			default:
				w.WriteHeader(http.StatusBadRequest)
			}
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	return mux
}

func TestWorkflow_SubmitApproveStats(t *testing.T) {
	store := &contentStore{}
	srv := httptest.NewServer(store.handler())
	t.Cleanup(srv.Close)

	logger := logging.NewTextLogger(io.Discard, slog.LevelDebug)
	token := func() (string, bool) { return "tok", true }
	svc := NewContentService(api.NewHTTPClient(srv.URL, 5*time.Second, token, logger))
	ctx := context.Background()

	// Contributor submits; the record shows up pending in the own listing.
	rec, err := svc.Submit(ctx, "Report Q1", "quarterly numbers")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, rec.Status)

	own, err := svc.ListOwn(ctx)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, models.StatusPending, own[0].Status)

	before, err := svc.Stats(ctx)
	require.NoError(t, err)

	// Moderator approves; the next stats call reflects the server-side shift.
	require.NoError(t, svc.Transition(ctx, rec.ID, ActionApprove))

	after, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.Approved+1, after.Approved)
	assert.Equal(t, before.Pending-1, after.Pending)
	assert.Equal(t, before.Total, after.Total)

	// The record is terminal now: the queue no longer offers it.
	queue, err := svc.ListAll(ctx, Filter{Status: models.StatusPending})
	require.NoError(t, err)
	assert.Empty(t, queue)

	all, err := svc.ListAll(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Status.Terminal())
}
