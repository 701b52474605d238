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
	"fmt"
	"net/url"
	"strings"
	"time"
)

// AmbiguousServerError means more than one vibe-kanban server process was
// detected while auto-discovering, so no connection target can be chosen
// safely. The user must pick one via VIBE_API_URL.
type AmbiguousServerError struct {
	// Count is the number of matching server processes.
	Count int

	// DiscoveredPort is the port-file value, shown as a hint. The port file
	// is rewritten on startup, so it points at the most recently started
	// server.
	DiscoveredPort int
}

// Error implements the error interface.
func (e *AmbiguousServerError) Error() string {
	return fmt.Sprintf("%d vibe-kanban servers detected", e.Count)
}

// UserMessage implements errors.UserVisibleError.
func (e *AmbiguousServerError) UserMessage() string {
	return fmt.Sprintf("Error: %d vibe-kanban servers detected!\n\nCannot auto-discover which server to connect to.", e.Count)
}

// Suggestion implements errors.UserVisibleError.
func (e *AmbiguousServerError) Suggestion() string {
	var b strings.Builder
	b.WriteString("Please specify the target server explicitly:\n")
	b.WriteString("  export VIBE_API_URL=http://127.0.0.1:<port>/api")
	if e.DiscoveredPort > 0 {
		fmt.Fprintf(&b, "\n\nHint: Port file shows %d (most recently started)", e.DiscoveredPort)
	}
	return b.String()
}

// APIError is a non-2xx response from the server. The message is extracted
// best-effort from the response body.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Message is the extracted human-readable message.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("server returned HTTP %d: %s", e.Status, e.Message)
}

// UserMessage implements errors.UserVisibleError.
func (e *APIError) UserMessage() string {
	return fmt.Sprintf("Error %d: %s", e.Status, e.Message)
}

// Suggestion implements errors.UserVisibleError.
func (e *APIError) Suggestion() string {
	return ""
}

// ConnectionError means the transport could not reach any server at the
// resolved base URL.
type ConnectionError struct {
	// BaseURL is the URL the request was attempted against.
	BaseURL string

	// DiscoveredPort is the port-file value at failure time, or zero when
	// no port file was readable. Used to hint at a likely port mismatch.
	DiscoveredPort int

	// Cause is the underlying transport error.
	Cause error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed: %s: %v", e.BaseURL, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// UserMessage implements errors.UserVisibleError.
func (e *ConnectionError) UserMessage() string {
	return fmt.Sprintf("Connection failed: %s\n\nPossible causes:\n  1. Server is not running\n  2. Server is running on a different port", e.BaseURL)
}

// Suggestion implements errors.UserVisibleError.
func (e *ConnectionError) Suggestion() string {
	var b strings.Builder
	if e.DiscoveredPort > 0 && e.DiscoveredPort != attemptedPort(e.BaseURL) {
		fmt.Fprintf(&b, "Found server port file indicating port %d\n", e.DiscoveredPort)
		fmt.Fprintf(&b, "Try: VIBE_API_URL=http://127.0.0.1:%d/api vibe <command>\n\n", e.DiscoveredPort)
	}
	b.WriteString("To specify a custom URL:\n")
	b.WriteString("  export VIBE_API_URL=http://127.0.0.1:<port>/api")
	return b.String()
}

// attemptedPort extracts the port from a base URL, defaulting to 80 the way
// the connection itself would.
func attemptedPort(baseURL string) int {
	u, err := url.Parse(baseURL)
	if err != nil {
		return 0
	}
	if p := u.Port(); p != "" {
		var port int
		fmt.Sscanf(p, "%d", &port)
		return port
	}
	return 80
}

// TimeoutError means a single HTTP exchange exceeded its budget.
type TimeoutError struct {
	// BaseURL is the server the request was sent to.
	BaseURL string

	// Budget is the timeout that was exceeded.
	Budget time.Duration
}

// Error implements the error interface.
func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.Budget)
}

// UserMessage implements errors.UserVisibleError.
func (e *TimeoutError) UserMessage() string {
	return fmt.Sprintf("Request timed out after %s\nThe server at %s may be unresponsive", e.Budget, e.BaseURL)
}

// Suggestion implements errors.UserVisibleError.
func (e *TimeoutError) Suggestion() string {
	return ""
}
