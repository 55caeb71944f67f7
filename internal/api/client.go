package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the CV matching API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an API client. A nil httpClient gets a default with a
// 30 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// errorBody is the error shape the scoring service returns on non-2xx
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// apiError maps a non-2xx response to the single display string surfaced to
// the user: details first, then error, then a generic network message.
func apiError(resp *http.Response, body []byte) error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Details != "" {
			return fmt.Errorf("%s", eb.Details)
		}
		if eb.Error != "" {
			return fmt.Errorf("%s", eb.Error)
		}
	}
	return fmt.Errorf("Network error: request failed with status %d", resp.StatusCode)
}

// do sends one request and decodes a 2xx JSON body into out. Transport
// failures come back as a single network-error display string. No retries.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("Network error: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("Network error: %v", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp, body)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// getJSON issues a GET against an API path
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// postJSON issues a JSON POST against an API path
func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}
