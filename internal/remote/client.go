package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const postTimeout = 10 * time.Second

// Client posts JSON payloads to the backend API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
}

// NewClient creates a client for a backend base address such as
// "http://127.0.0.1:8188". The API prefix is appended here.
func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: baseURL + APIPrefix,
		http:    &http.Client{Timeout: postTimeout},
		logger:  logger,
	}
}

// PostSchedulerValues reports widget values to the backend. The
// response body carries no contract and is discarded.
func (c *Client) PostSchedulerValues(ctx context.Context, report ValuesReport) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode scheduler values: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+SchedulerValuesPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build scheduler values request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post scheduler values: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("post scheduler values: backend returned %s", resp.Status)
	}
	return nil
}
