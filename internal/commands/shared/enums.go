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
	"slices"
	"strings"

	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

// TaskStatuses are the statuses accepted by task create/update/list.
var TaskStatuses = []string{"todo", "in-progress", "in-review", "done", "cancelled"}

// Executors are the coding agents the server can run an attempt with.
var Executors = []string{"CLAUDE_CODE", "CODEX", "GEMINI", "CURSOR_AGENT", "OPENCODE"}

// ValidateChoice checks a flag value against its allowed set. Empty values
// pass; optional flags validate only when set.
func ValidateChoice(field, value string, allowed []string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return &pkgerrors.ValidationError{
		Field:   field,
		Message: "must be one of " + strings.Join(allowed, ", "),
	}
}
