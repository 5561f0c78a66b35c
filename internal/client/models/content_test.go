package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.True(t, StatusApproved.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

func TestContentRecord_UnmarshalWireFormat(t *testing.T) {
	data := []byte(`{
		"_id": "68b1c2",
		"title": "Report Q1",
		"description": "quarterly numbers",
		"status": "pending",
		"createdBy": {"email": "alice@example.com"},
		"createdAt": "2026-03-01T10:30:00Z"
	}`)

	var rec ContentRecord
	require.NoError(t, json.Unmarshal(data, &rec))

	assert.Equal(t, "68b1c2", rec.ID)
	assert.Equal(t, "Report Q1", rec.Title)
	assert.Equal(t, StatusPending, rec.Status)
	assert.Equal(t, "alice@example.com", rec.SubmitterLabel())
	assert.Equal(t, time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), rec.CreatedAt)
}

func TestContentRecord_SubmitterLabelFallback(t *testing.T) {
	var rec ContentRecord
	assert.Equal(t, "N/A", rec.SubmitterLabel())

	rec.CreatedBy = &Submitter{}
	assert.Equal(t, "N/A", rec.SubmitterLabel())
}
