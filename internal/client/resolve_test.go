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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeCensus returns a fixed process count.
type fakeCensus int

func (f fakeCensus) CountMatching(ctx context.Context) int { return int(f) }

// writePortFile creates a discovery file with the given content and returns
// its path.
func writePortFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vibe-kanban.port")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write port file: %v", err)
	}
	return path
}

func TestOverridePrecedence(t *testing.T) {
	// The override must win even with a readable port file and an
	// ambiguous census.
	r := &Resolver{
		Override:   "http://10.0.0.1:9999/api",
		ConfigURL:  "http://ignored:1/api",
		PortFile:   writePortFile(t, "50492"),
		DefaultURL: DefaultBaseURL,
		Census:     fakeCensus(5),
	}

	got, err := r.BaseURL(context.Background())
	if err != nil {
		t.Fatalf("BaseURL failed: %v", err)
	}
	if got != "http://10.0.0.1:9999/api" {
		t.Errorf("Expected override verbatim, got %s", got)
	}
}

func TestConfigURLSkipsDiscovery(t *testing.T) {
	r := &Resolver{
		ConfigURL:  "http://127.0.0.1:4000/api",
		PortFile:   writePortFile(t, "50492"),
		DefaultURL: DefaultBaseURL,
		Census:     fakeCensus(5),
	}

	got, err := r.BaseURL(context.Background())
	if err != nil {
		t.Fatalf("BaseURL failed: %v", err)
	}
	if got != "http://127.0.0.1:4000/api" {
		t.Errorf("Expected config URL, got %s", got)
	}
}

func TestDefaultFallback(t *testing.T) {
	r := &Resolver{
		PortFile:   filepath.Join(t.TempDir(), "missing.port"),
		DefaultURL: DefaultBaseURL,
		Census:     fakeCensus(0),
	}

	got, err := r.BaseURL(context.Background())
	if err != nil {
		t.Fatalf("BaseURL failed: %v", err)
	}
	if got != "http://localhost:3000/api" {
		t.Errorf("Expected default URL, got %s", got)
	}
}

func TestSingleServerResolution(t *testing.T) {
	r := &Resolver{
		PortFile:   writePortFile(t, "50492"),
		DefaultURL: DefaultBaseURL,
		Census:     fakeCensus(1),
	}

	got, err := r.BaseURL(context.Background())
	if err != nil {
		t.Fatalf("BaseURL failed: %v", err)
	}
	if got != "http://127.0.0.1:50492/api" {
		t.Errorf("Expected discovered URL, got %s", got)
	}
}

func TestZeroRunningServersStillResolves(t *testing.T) {
	// A stale port file with no running server resolves anyway; the
	// connection attempt produces the actionable diagnostic.
	r := &Resolver{
		PortFile:   writePortFile(t, "50492"),
		DefaultURL: DefaultBaseURL,
		Census:     fakeCensus(0),
	}

	got, err := r.BaseURL(context.Background())
	if err != nil {
		t.Fatalf("BaseURL failed: %v", err)
	}
	if got != "http://127.0.0.1:50492/api" {
		t.Errorf("Expected discovered URL, got %s", got)
	}
}

func TestAmbiguityDetection(t *testing.T) {
	r := &Resolver{
		PortFile:   writePortFile(t, "50492"),
		DefaultURL: DefaultBaseURL,
		Census:     fakeCensus(3),
	}

	_, err := r.BaseURL(context.Background())
	if err == nil {
		t.Fatal("Expected ambiguity error, got none")
	}

	var ambErr *AmbiguousServerError
	if !errors.As(err, &ambErr) {
		t.Fatalf("Expected *AmbiguousServerError, got %T", err)
	}
	if ambErr.Count != 3 {
		t.Errorf("Expected count 3, got %d", ambErr.Count)
	}
	if ambErr.DiscoveredPort != 50492 {
		t.Errorf("Expected discovered port 50492, got %d", ambErr.DiscoveredPort)
	}
	if !strings.Contains(ambErr.Suggestion(), "VIBE_API_URL") {
		t.Errorf("Suggestion should name the override variable: %q", ambErr.Suggestion())
	}
	if !strings.Contains(ambErr.Suggestion(), "50492") {
		t.Errorf("Suggestion should include the port hint: %q", ambErr.Suggestion())
	}
}

func TestDiscoveredPort(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantPort int
		wantOK   bool
	}{
		{"plain port", "3000", 3000, true},
		{"trailing newline", "50492\n", 50492, true},
		{"surrounding whitespace", "  8080  ", 8080, true},
		{"not a number", "abc", 0, false},
		{"negative", "-1", 0, false},
		{"zero", "0", 0, false},
		{"float", "30.5", 0, false},
		{"empty", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{PortFile: writePortFile(t, tt.content)}
			port, ok := r.DiscoveredPort()
			if ok != tt.wantOK {
				t.Fatalf("DiscoveredPort ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && port != tt.wantPort {
				t.Errorf("DiscoveredPort = %d, want %d", port, tt.wantPort)
			}
		})
	}
}

func TestZeroPortFileFallsThrough(t *testing.T) {
	// A zero port cannot be a listening server; the census is skipped and
	// the default URL is used.
	r := &Resolver{
		PortFile:   writePortFile(t, "0"),
		DefaultURL: DefaultBaseURL,
		Census:     fakeCensus(5), // would be ambiguous if discovery happened
	}

	got, err := r.BaseURL(context.Background())
	if err != nil {
		t.Fatalf("BaseURL failed: %v", err)
	}
	if got != DefaultBaseURL {
		t.Errorf("Expected default URL, got %s", got)
	}
}

func TestMalformedPortFileFallsThrough(t *testing.T) {
	r := &Resolver{
		PortFile:   writePortFile(t, "not-a-port"),
		DefaultURL: DefaultBaseURL,
		Census:     fakeCensus(5), // would be ambiguous if discovery happened
	}

	got, err := r.BaseURL(context.Background())
	if err != nil {
		t.Fatalf("BaseURL failed: %v", err)
	}
	if got != DefaultBaseURL {
		t.Errorf("Expected default URL, got %s", got)
	}
}

func TestNilCensusCountsAsZero(t *testing.T) {
	r := &Resolver{
		PortFile:   writePortFile(t, "3333"),
		DefaultURL: DefaultBaseURL,
	}

	got, err := r.BaseURL(context.Background())
	if err != nil {
		t.Fatalf("BaseURL failed: %v", err)
	}
	if got != "http://127.0.0.1:3333/api" {
		t.Errorf("Expected discovered URL, got %s", got)
	}
}
