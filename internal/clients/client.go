// Package clients holds thin wrappers over the remote platform services
// the back office consumes: customers, products, inventory, image
// uploads and damage assessment. Every wrapper surfaces the backend's
// "message" field on failure and falls back to a generic error.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const headerWarehouseID = "X-Dc-Id"

// APIError is a non-2xx backend response. Message is the backend's own
// message when it sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client is the shared HTTP plumbing. Auth headers are supplied by the
// caller's session, not stored here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	headers    func() http.Header
}

func New(baseURL string, headers func() http.Header) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		headers:    headers,
	}
}

type requestOpts struct {
	warehouseID string
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}, opts requestOpts) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.headers != nil {
		for key, values := range c.headers() {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.warehouseID != "" {
		req.Header.Set(headerWarehouseID, opts.warehouseID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
