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
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// censusTimeout bounds the process-table scan. Scanning is advisory: when it
// cannot complete in time the resolver assumes zero running servers.
const censusTimeout = 5 * time.Second

// ProcessCensus counts vibe-kanban server processes currently running.
// It exists to detect the "more than one server" case; the count is never
// inspected beyond its cardinality.
type ProcessCensus interface {
	// CountMatching returns the number of running server processes.
	// Implementations must treat their own failure as zero, not as an
	// error the resolver has to handle.
	CountMatching(ctx context.Context) int
}

// serverMarkers identify a production server command line when they appear
// together with "vibe-kanban" (platform build output directories).
var serverMarkers = []string{"dist/", "macos-", "linux-", "windows-"}

// devServerPaths identify a development server started from a cargo
// workspace.
var devServerPaths = []string{"target/debug/server", "target/release/server"}

// censusExclusions are substrings that mark false positives: this CLI
// itself, and npm wrapper processes that merely carry the package name.
var censusExclusions = []string{"vibe-cli", "npm exec"}

// matchesServer reports whether a command line belongs to a running
// vibe-kanban server process.
func matchesServer(cmdline string) bool {
	for _, excl := range censusExclusions {
		if strings.Contains(cmdline, excl) {
			return false
		}
	}

	if strings.Contains(cmdline, "vibe-kanban") {
		for _, marker := range serverMarkers {
			if strings.Contains(cmdline, marker) {
				return true
			}
		}
	}

	for _, dev := range devServerPaths {
		if strings.Contains(cmdline, dev) {
			return true
		}
	}

	return false
}

// SystemCensus scans the OS process table via gopsutil.
type SystemCensus struct{}

// NewSystemCensus returns a census backed by the real process table.
func NewSystemCensus() *SystemCensus {
	return &SystemCensus{}
}

// CountMatching implements ProcessCensus. Processes that disappear or deny
// access mid-scan are skipped; a failure to list processes at all counts as
// zero running servers.
func (s *SystemCensus) CountMatching(ctx context.Context) int {
	ctx, cancel := context.WithTimeout(ctx, censusTimeout)
	defer cancel()

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return 0
	}

	self := int32(os.Getpid())

	count := 0
	for _, p := range procs {
		if p.Pid == self {
			continue
		}
		cmdline, err := p.CmdlineWithContext(ctx)
		if err != nil || cmdline == "" {
			continue
		}
		if matchesServer(cmdline) {
			count++
		}
	}
	return count
}
