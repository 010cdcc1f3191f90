package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ncastro/lavanderia-panel/pkg/apperror"
)

// Client is the panel's only channel to persistent state: a thin JSON
// facade over the backend REST API with a fixed base address. There is
// no local persistence and no offline queue.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base address, e.g.
// "http://192.168.0.10:5000". A trailing slash is tolerated.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured base address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return apperror.NewTransportError(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperror.NewTransportError(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return apperror.NewTransportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewTransportError(err)
	}

	if resp.StatusCode >= 400 {
		return apperror.NewAPIError(resp.StatusCode, extractMessage(data))
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return apperror.NewTransportError(err)
		}
	}
	return nil
}

// extractMessage pulls a user-presentable message out of an error body.
// The backend answers either with {"message": "..."}, with a bare JSON
// string, or with plain text.
func extractMessage(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}

	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		return plain
	}

	// Other JSON shapes (error objects, arrays) are not user-presentable;
	// callers fall back to their generic message.
	if json.Valid(data) {
		return ""
	}

	return strings.TrimSpace(string(data))
}
