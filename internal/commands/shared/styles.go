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
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// CLI style colors using lipgloss. Styling applies only when the target
// stream is a terminal; piped output keeps the exact plain text so scripts
// can match on it. Error diagnostics are never styled.
var (
	// StatusOK styles success confirmations
	StatusOK = lipgloss.NewStyle().Foreground(lipgloss.Color("42")) // green

	// Muted styles secondary text such as wait-loop progress lines
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("245")) // gray
)

// SymbolOK marks success confirmations
const SymbolOK = "✓"

// StdoutIsTerminal reports whether stdout is attached to a TTY.
// Success confirmations print there.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// StderrIsTerminal reports whether stderr is attached to a TTY.
// Progress lines print there.
func StderrIsTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// StdinIsTerminal reports whether stdin is attached to a TTY. Interactive
// confirmation prompts require one.
func StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// RenderOK renders a success confirmation, prefixed with a green checkmark
// on a terminal and returned verbatim otherwise.
func RenderOK(msg string) string {
	if !StdoutIsTerminal() {
		return msg
	}
	return StatusOK.Render(SymbolOK) + " " + msg
}

// RenderProgress renders a muted progress line for long-running waits.
func RenderProgress(msg string) string {
	if !StderrIsTerminal() {
		return msg
	}
	return Muted.Render(msg)
}
