package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/contentdesk/internal/client/models"
	"github.com/dmitrijs2005/contentdesk/internal/common"
	"github.com/dmitrijs2005/contentdesk/internal/logging"
)

// TokenSource yields the current bearer credential, if any. The session
// manager is the only implementation; the transport never stores the token
// itself.
type TokenSource func() (string, bool)

// HTTPClient is the REST implementation of Client.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	logger  logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, token TokenSource, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		logger:  logger,
	}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type createContentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", nil, credentialsRequest{Email: email, Password: password}, &resp)
	if err != nil {
		// At login there is no session to invalidate: a 401/403 means the
		// server declined the submitted credentials.
		if isAuthStatus(err) {
			return "", fmt.Errorf("%w", common.ErrAuthRejected)
		}
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: empty token in login response", common.ErrRequestFailed)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, password string) error {
	err := c.do(ctx, http.MethodPost, "/auth/signup", nil, credentialsRequest{Email: email, Password: password}, nil)
	if err != nil && isAuthStatus(err) {
		return fmt.Errorf("%w", common.ErrAuthRejected)
	}
	return err
}

func (c *HTTPClient) ListContent(ctx context.Context) ([]models.ContentRecord, error) {
	var recs []models.ContentRecord
	if err := c.do(ctx, http.MethodGet, "/content", nil, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *HTTPClient) ListRecent(ctx context.Context) ([]models.ContentRecord, error) {
	var recs []models.ContentRecord
	if err := c.do(ctx, http.MethodGet, "/content/recent", nil, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *HTTPClient) Search(ctx context.Context, status, keyword string) ([]models.ContentRecord, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	var recs []models.ContentRecord
	if err := c.do(ctx, http.MethodGet, "/content/search", q, nil, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *HTTPClient) Stats(ctx context.Context) (models.AggregateStats, error) {
	var stats models.AggregateStats
	if err := c.do(ctx, http.MethodGet, "/content/stats", nil, nil, &stats); err != nil {
		return models.AggregateStats{}, err
	}
	return stats, nil
}

func (c *HTTPClient) CreateContent(ctx context.Context, title, description string) (models.ContentRecord, error) {
	var rec models.ContentRecord
	err := c.do(ctx, http.MethodPost, "/content", nil, createContentRequest{Title: title, Description: description}, &rec)
	if err != nil {
		return models.ContentRecord{}, err
	}
	return rec, nil
}

func (c *HTTPClient) Approve(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/content/"+url.PathEscape(id)+"/approve", nil, nil, nil)
}

func (c *HTTPClient) Reject(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/content/"+url.PathEscape(id)+"/reject", nil, nil, nil)
}

// do issues one request and decodes the JSON response into out (when non-nil).
// Transport errors map to ErrUnavailable, 401/403 to ErrAuthExpired (the
// session-invalid path), and all other non-2xx statuses to ErrRequestFailed.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.logger.Debug(ctx, "request done", "method", method, "path", path, "request_id", requestID, "status", resp.StatusCode)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: server returned %d", common.ErrAuthExpired, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: server returned %d", common.ErrRequestFailed, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", common.ErrRequestFailed, err)
	}
	return nil
}

// isAuthStatus reports whether err came from a 401/403 response.
func isAuthStatus(err error) bool {
	return errors.Is(err, common.ErrAuthExpired)
}
