// Copyright 2025 Vibe Teams
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/vibe-teams/vibe-cli/internal/log"
)

// DefaultTimeout bounds a single HTTP exchange, connect plus response.
const DefaultTimeout = 30 * time.Second

// Client is a client for the vibe-kanban REST API. The base URL is resolved
// once at construction and the client performs no retries: every failure is
// terminal for the current invocation.
type Client struct {
	httpClient *http.Client
	baseURL    string
	resolver   *Resolver
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithResolver sets the endpoint resolver used at construction.
func WithResolver(r *Resolver) Option {
	return func(c *Client) { c.resolver = r }
}

// WithBaseURL pins the base URL, skipping resolution. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithTimeout sets the per-exchange timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger for request traces.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client, resolving the server base URL exactly once.
// Resolution can fail only with *AmbiguousServerError.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.baseURL == "" {
		if c.resolver == nil {
			c.resolver = DefaultResolver("", c.logger)
		}
		baseURL, err := c.resolver.BaseURL(ctx)
		if err != nil {
			return nil, err
		}
		c.baseURL = baseURL
	}

	return c, nil
}

// BaseURL returns the resolved server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil, query)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body, nil)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body, nil)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// UnwrapData extracts the payload from the server's {"data": ...} response
// envelope. The second return is false when the value is not an object
// carrying a data field; callers decide per endpoint contract whether to
// fall back to the raw value.
func UnwrapData(raw json.RawMessage) (json.RawMessage, bool) {
	var envelope struct {
		Data *json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Data == nil {
		return raw, false
	}
	return *envelope.Data, true
}

// do performs one HTTP exchange against the resolved base URL. A nil result
// with a nil error means the server answered 2xx with an empty body.
func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.debug("request", slog.String(log.MethodKey, method), slog.String(log.PathKey, path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.transportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(err)
	}

	c.debug("response", slog.String(log.PathKey, path), slog.Int(log.StatusKey, resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: extractErrorMessage(respBody),
		}
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}
	if !json.Valid(respBody) {
		return nil, fmt.Errorf("failed to decode response from %s: not valid JSON", path)
	}
	return json.RawMessage(respBody), nil
}

// transportError maps a transport-level failure to the error taxonomy:
// deadline overruns become *TimeoutError, everything else *ConnectionError
// with a port-file hint when one is available.
func (c *Client) transportError(err error) error {
	var netErr interface{ Timeout() bool }
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &TimeoutError{BaseURL: c.baseURL, Budget: c.httpClient.Timeout}
	}

	connErr := &ConnectionError{BaseURL: c.baseURL, Cause: err}
	if c.resolver != nil {
		if port, ok := c.resolver.DiscoveredPort(); ok {
			connErr.DiscoveredPort = port
		}
	}
	return connErr
}

// extractErrorMessage pulls a human-readable message out of an error body.
// Preference order for object bodies: message, error, the whole object;
// error_data is appended when present. Non-object JSON is pretty-printed,
// and a body that is not JSON at all is passed through verbatim.
func extractErrorMessage(body []byte) string {
	var value any
	if err := json.Unmarshal(body, &value); err != nil {
		return string(body)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		pretty, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return string(body)
		}
		return string(pretty)
	}

	var msg string
	switch {
	case obj["message"] != nil:
		msg = renderJSONValue(obj["message"])
	case obj["error"] != nil:
		msg = renderJSONValue(obj["error"])
	default:
		msg = renderJSONValue(obj)
	}

	if obj["error_data"] != nil {
		msg = msg + ": " + renderJSONValue(obj["error_data"])
	}
	return msg
}

// renderJSONValue formats a decoded JSON value for an error message:
// strings verbatim, anything else as compact JSON.
func renderJSONValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func (c *Client) debug(msg string, attrs ...slog.Attr) {
	if c.logger != nil {
		c.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
	}
}
