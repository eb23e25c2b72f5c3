// Package apiclient is a typed Go client for the carelink HTTP API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/carelink/carelink/pkg/fetch"
)

const apiBasePath = "/api/v1"

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("apiclient: %d %s", e.StatusCode, e.Message)
}

// Client talks to a carelink server.
type Client struct {
	BaseURL    string
	AuthToken  string
	HTTPClient *http.Client
}

// New returns a Client for the given base URL (scheme + host, no path).
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// WithToken returns a copy of the client that sends the given bearer token.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.AuthToken = token
	return &clone
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, req, res interface{}) error {
	var body io.Reader
	var contentType string
	if req != nil {
		b := &bytes.Buffer{}
		if err := json.NewEncoder(b).Encode(req); err != nil {
			return err
		}
		body = b
		contentType = "application/json"
	}

	u := c.BaseURL + apiBasePath + path
	if len(params) != 0 {
		u += "?" + params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.AuthToken)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	httpRes, err := client.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode >= 200 && httpRes.StatusCode < 300 {
		if res != nil {
			return json.NewDecoder(httpRes.Body).Decode(res)
		}
		return nil
	}

	if httpRes.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, fetch.ErrNotFound)
	}

	apiErr := &APIError{StatusCode: httpRes.StatusCode}
	if err := json.NewDecoder(httpRes.Body).Decode(apiErr); err != nil {
		apiErr.Message = http.StatusText(httpRes.StatusCode)
	}
	return apiErr
}

// listEnvelope matches the server's paginated response wrapper.
type listEnvelope[T any] struct {
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}
