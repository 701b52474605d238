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
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"
)

// newTestClient builds a client pinned to the given test server.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	c, err := New(context.Background(), WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}

func TestGetWithQueryParams(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tasks" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("project_id"); got != "abc 123" {
			t.Errorf("Expected decoded project_id 'abc 123', got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	c := newTestClient(t, server)
	query := url.Values{}
	query.Set("project_id", "abc 123")

	if _, err := c.Get(context.Background(), "/tasks", query); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestPostSendsJSONBody(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %q", ct)
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("Failed to decode body: %v", err)
		}
		if body["name"] != "demo" {
			t.Errorf("Expected name 'demo', got %v", body["name"])
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"data": body})
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	c := newTestClient(t, server)
	raw, err := c.Post(context.Background(), "/projects", map[string]string{"name": "demo"})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}
	if raw == nil {
		t.Fatal("Expected a response body")
	}
}

func TestGetWithoutBodyOmitsContentType(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "" {
			t.Errorf("Expected no content type, got %q", ct)
		}
		json.NewEncoder(w).Encode(map[string]any{"data": nil})
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	c := newTestClient(t, server)
	if _, err := c.Get(context.Background(), "/config", nil); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestEmptyBodyMeansNoResult(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	c := newTestClient(t, server)
	raw, err := c.Delete(context.Background(), "/projects/123")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if raw != nil {
		t.Errorf("Expected nil result for empty body, got %s", raw)
	}
}

func TestErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "message field preferred",
			status:      404,
			body:        `{"message": "not found"}`,
			wantMessage: "not found",
		},
		{
			name:        "error field with error_data",
			status:      400,
			body:        `{"error": "bad", "error_data": "detail"}`,
			wantMessage: "bad: detail",
		},
		{
			name:        "message wins over error",
			status:      400,
			body:        `{"message": "primary", "error": "secondary"}`,
			wantMessage: "primary",
		},
		{
			name:        "whole object when neither field present",
			status:      500,
			body:        `{"code": "oops"}`,
			wantMessage: `{"code":"oops"}`,
		},
		{
			name:        "non-JSON body passed through",
			status:      502,
			body:        "oops",
			wantMessage: "oops",
		},
		{
			name:        "structured error_data rendered compact",
			status:      409,
			body:        `{"error": "conflict", "error_data": {"branch": "main"}}`,
			wantMessage: `conflict: {"branch":"main"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			server := httptest.NewServer(handler)
			defer server.Close()

			c := newTestClient(t, server)
			_, err := c.Get(context.Background(), "/x", nil)
			if err == nil {
				t.Fatal("Expected an error")
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected *APIError, got %T", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestNonObjectErrorBodyPrettyPrinted(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`["first", "second"]`))
	})
	server := httptest.NewServer(handler)
	defer server.Close()

	c := newTestClient(t, server)
	_, err := c.Get(context.Background(), "/x", nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	want := "[\n  \"first\",\n  \"second\"\n]"
	if apiErr.Message != want {
		t.Errorf("Message = %q, want %q", apiErr.Message, want)
	}
	if !strings.Contains(apiErr.UserMessage(), "Error 400:") {
		t.Errorf("UserMessage should carry the status: %q", apiErr.UserMessage())
	}
}

func TestConnectionErrorWithPortHint(t *testing.T) {
	// A server that is immediately closed yields connection refused.
	server := httptest.NewServer(http.NotFoundHandler())
	deadURL := server.URL
	server.Close()

	resolver := &Resolver{PortFile: writePortFile(t, "50492")}
	c, err := New(context.Background(), WithBaseURL(deadURL), WithResolver(resolver))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = c.Get(context.Background(), "/projects", nil)
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("Expected *ConnectionError, got %T: %v", err, err)
	}
	if connErr.DiscoveredPort != 50492 {
		t.Errorf("Expected port hint 50492, got %d", connErr.DiscoveredPort)
	}
	if !strings.Contains(connErr.Suggestion(), "VIBE_API_URL=http://127.0.0.1:50492/api") {
		t.Errorf("Suggestion should point at the discovered port: %q", connErr.Suggestion())
	}
	if !strings.Contains(connErr.UserMessage(), "Connection failed: "+deadURL) {
		t.Errorf("UserMessage should name the attempted URL: %q", connErr.UserMessage())
	}
}

func TestConnectionErrorHintSuppressedWhenPortsMatch(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	deadURL := server.URL
	server.Close()

	port := attemptedPort(deadURL)
	resolver := &Resolver{PortFile: writePortFile(t, strconv.Itoa(port))}
	c, err := New(context.Background(), WithBaseURL(deadURL), WithResolver(resolver))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = c.Get(context.Background(), "/projects", nil)
	var connErr *ConnectionError
	if !errors.As(err, &connErr) {
		t.Fatalf("Expected *ConnectionError, got %T", err)
	}
	if strings.Contains(connErr.Suggestion(), "Found server port file") {
		t.Errorf("Hint should be suppressed when ports match: %q", connErr.Suggestion())
	}
}

func TestTimeoutError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	server := httptest.NewServer(handler)
	defer server.Close()

	c, err := New(context.Background(),
		WithBaseURL(server.URL),
		WithTimeout(20*time.Millisecond))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	_, err = c.Get(context.Background(), "/slow", nil)
	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("Expected *TimeoutError, got %T: %v", err, err)
	}
	if !strings.Contains(timeoutErr.UserMessage(), server.URL) {
		t.Errorf("UserMessage should name the base URL: %q", timeoutErr.UserMessage())
	}
}

func TestNewResolvesAmbiguityAsError(t *testing.T) {
	resolver := &Resolver{
		PortFile:   writePortFile(t, "50492"),
		DefaultURL: DefaultBaseURL,
		Census:     fakeCensus(2),
	}

	_, err := New(context.Background(), WithResolver(resolver))
	var ambErr *AmbiguousServerError
	if !errors.As(err, &ambErr) {
		t.Fatalf("Expected *AmbiguousServerError, got %T: %v", err, err)
	}
}

func TestUnwrapData(t *testing.T) {
	raw := json.RawMessage(`{"success": true, "data": {"id": "1"}}`)
	data, ok := UnwrapData(raw)
	if !ok {
		t.Fatal("Expected data envelope to unwrap")
	}
	if string(data) != `{"id": "1"}` {
		t.Errorf("Unexpected payload: %s", data)
	}

	bare := json.RawMessage(`{"id": "1"}`)
	data, ok = UnwrapData(bare)
	if ok {
		t.Error("Expected no envelope on bare object")
	}
	if string(data) != string(bare) {
		t.Errorf("Expected raw passthrough, got %s", data)
	}

	arr := json.RawMessage(`[1, 2]`)
	if _, ok := UnwrapData(arr); ok {
		t.Error("Expected no envelope on array")
	}
}

