// Package pipeline is a thin HTTP client for the external quiz-generation
// container. Generation itself (PDF ingestion, clustering, prompting) lives
// entirely in that collaborator; this side only triggers runs.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no pipeline URL was configured.
var ErrNotConfigured = errors.New("pipeline not configured")

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

// NewClient returns nil when baseURL is empty so callers can treat the
// pipeline as absent.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if baseURL == "" {
		return nil
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// RunRequest asks the pipeline to build a quiz from a Google Drive folder.
type RunRequest struct {
	DriveURL string `json:"drive_url"`
}

// Run triggers a pipeline execution and returns its raw JSON response.
// Pipeline runs take minutes; the caller's context bounds the wait.
func (c *Client) Run(ctx context.Context, req RunRequest) (map[string]any, error) {
	if c == nil {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/run", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.log.Info("pipeline run requested", zap.String("drive_url", req.DriveURL))
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return out, fmt.Errorf("pipeline returned status %d", resp.StatusCode)
	}
	return out, nil
}
