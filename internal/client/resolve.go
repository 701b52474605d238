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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vibe-teams/vibe-cli/internal/log"
)

// Environment variable and fixed resolution constants.
const (
	// EnvAPIURL overrides all discovery when set to a non-empty string.
	// It is used verbatim, with no validation of URL shape.
	EnvAPIURL = "VIBE_API_URL"

	// DefaultBaseURL is returned when no discovery is possible.
	DefaultBaseURL = "http://localhost:3000/api"
)

// PortFilePath returns the well-known discovery file written by the server
// on startup. Its sole content is the decimal listening port.
func PortFilePath() string {
	return filepath.Join(os.TempDir(), "vibe-kanban", "vibe-kanban.port")
}

// Resolver determines the base URL of the target server. All inputs are
// explicit fields so tests can resolve without touching the real
// environment, filesystem, or process table.
//
// Resolution order: Override, then ConfigURL, then port-file discovery
// (cross-checked against the process census), then DefaultURL. The only
// failure mode is ambiguity: a readable port file plus more than one
// matching server process.
type Resolver struct {
	// Override is the environment escape hatch. Used verbatim when
	// non-empty; discovery and the ambiguity check are skipped entirely.
	Override string

	// ConfigURL is a fixed base URL from the config file. Lower priority
	// than Override, but like it, skips discovery when set.
	ConfigURL string

	// PortFile is the discovery file path.
	PortFile string

	// DefaultURL is the fallback when discovery yields nothing.
	DefaultURL string

	// Census counts running server processes.
	Census ProcessCensus

	// Logger receives resolution traces. Nil disables logging.
	Logger *slog.Logger
}

// DefaultResolver wires a Resolver against the real environment.
// configURL comes from the config file and may be empty.
func DefaultResolver(configURL string, logger *slog.Logger) *Resolver {
	return &Resolver{
		Override:   os.Getenv(EnvAPIURL),
		ConfigURL:  configURL,
		PortFile:   PortFilePath(),
		DefaultURL: DefaultBaseURL,
		Census:     NewSystemCensus(),
		Logger:     logger,
	}
}

// BaseURL resolves the server base URL for this invocation. It always
// succeeds except for the ambiguity case, which returns
// *AmbiguousServerError.
func (r *Resolver) BaseURL(ctx context.Context) (string, error) {
	if r.Override != "" {
		r.trace("using environment override", r.Override)
		return r.Override, nil
	}

	if r.ConfigURL != "" {
		r.trace("using config file api_url", r.ConfigURL)
		return r.ConfigURL, nil
	}

	port, ok := r.DiscoveredPort()
	if !ok {
		r.trace("no discovery, using default", r.DefaultURL)
		return r.DefaultURL, nil
	}

	// The port file only proves a server started at some point. Cross-check
	// how many are running now before trusting it.
	count := 0
	if r.Census != nil {
		count = r.Census.CountMatching(ctx)
	}
	if count > 1 {
		return "", &AmbiguousServerError{Count: count, DiscoveredPort: port}
	}

	resolved := fmt.Sprintf("http://127.0.0.1:%d/api", port)
	r.trace("discovered server via port file", resolved)
	return resolved, nil
}

// DiscoveredPort reads the port file. It returns false when the file is
// absent, unreadable, or does not contain a positive integer; a zero port
// is not a listening server.
func (r *Resolver) DiscoveredPort() (int, bool) {
	if r.PortFile == "" {
		return 0, false
	}
	data, err := os.ReadFile(r.PortFile)
	if err != nil {
		return 0, false
	}
	port, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || port <= 0 {
		return 0, false
	}
	return port, true
}

func (r *Resolver) trace(msg, baseURL string) {
	if r.Logger != nil {
		r.Logger.Debug(msg, slog.String(log.BaseURLKey, baseURL))
	}
}
