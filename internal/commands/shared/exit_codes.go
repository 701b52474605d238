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

package shared

import (
	"errors"
	"fmt"
	"io"
	"os"

	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

// Exit codes. The tool's contract is deliberately coarse: zero on success,
// one on any handled error, so shell scripts only ever branch on failure.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// HandleExitError is the single choke point for command failures. It prints
// a diagnostic to stderr and terminates the process with a non-zero code.
// Errors implementing pkgerrors.UserVisibleError control their own first
// lines (e.g. "Error 404: not found") and may add a suggestion block;
// everything else gets a generic "Error:" prefix.
func HandleExitError(err error) {
	if err == nil {
		return
	}
	writeExitError(os.Stderr, err)
	os.Exit(ExitFailure)
}

// writeExitError renders the diagnostic. Split out so tests can capture it
// without the process exiting.
func writeExitError(w io.Writer, err error) {
	var visible pkgerrors.UserVisibleError
	if errors.As(err, &visible) {
		fmt.Fprintln(w, visible.UserMessage())
		if suggestion := visible.Suggestion(); suggestion != "" {
			fmt.Fprintf(w, "\n%s\n", suggestion)
		}
		return
	}

	fmt.Fprintln(w, "Error:", err.Error())
}
