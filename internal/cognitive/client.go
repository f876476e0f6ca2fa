// Package cognitive is a small REST client for Azure AI services.
//
// All TextSense Azure backends share the same request shape: a JSON or raw
// body posted to an endpoint with a subscription key header, answered with
// JSON or an error envelope of the form {"error": {"code", "message"}}.
package cognitive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	headerKey    = "Ocp-Apim-Subscription-Key"
	headerRegion = "Ocp-Apim-Subscription-Region"

	maxResponseBytes = 4 << 20
)

// APIError is a non-2xx answer from an Azure endpoint.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("azure api error (status %d, %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("azure api error (status %d): %s", e.Status, e.Message)
}

// Client calls one Azure AI service endpoint.
type Client struct {
	endpoint string
	key      string
	region   string
	client   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithRegion sets the Ocp-Apim-Subscription-Region header, required by
// global Translator keys.
func WithRegion(region string) Option {
	return func(c *Client) { c.region = region }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// New creates a client for the given endpoint and subscription key.
func New(endpoint, key string, opts ...Option) *Client {
	c := &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the base URL without a trailing slash.
func (c *Client) Endpoint() string { return c.endpoint }

// PostJSON marshals payload, posts it to path and decodes the answer into out.
func (c *Client) PostJSON(ctx context.Context, path string, query url.Values, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}
	return c.Do(ctx, http.MethodPost, path, query, "application/json", bytes.NewReader(body), out)
}

// Do performs a request against the endpoint. A nil out discards the body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, contentType string, body io.Reader, out any) error {
	reqURL := c.endpoint + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set(headerKey, c.key)
	if c.region != "" {
		req.Header.Set(headerRegion, c.region)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	slog.Debug("azure request complete", "path", path, "status", resp.StatusCode,
		"bytes", len(data), "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeError(status int, data []byte) error {
	var envelope struct {
		Error struct {
			Code    json.RawMessage `json:"code"`
			Message string          `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Code = strings.Trim(string(envelope.Error.Code), `"`)
		apiErr.Message = envelope.Error.Message
		return apiErr
	}
	apiErr.Message = strings.TrimSpace(string(data))
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	if len(apiErr.Message) > 512 {
		apiErr.Message = apiErr.Message[:512]
	}
	return apiErr
}
