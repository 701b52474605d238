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

package attempts

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/client"
	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
)

// NewListCommand creates the attempts list command.
func NewListCommand() *cobra.Command {
	var taskID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attempts for a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("task_id", taskID); err != nil {
				return err
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Get(ctx, "/tasks/"+taskID, nil)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, projectAttempts(raw))
		},
	}

	cmd.Flags().StringVar(&taskID, "task-id", "", "Task ID (UUID)")
	cmd.MarkFlagRequired("task-id")

	return cmd
}

// projectAttempts extracts the attempts field from a task resource,
// falling back to an empty array when the task carries none.
func projectAttempts(raw json.RawMessage) json.RawMessage {
	body := raw
	if inner, ok := client.UnwrapData(raw); ok {
		body = inner
	}
	var task struct {
		Attempts json.RawMessage `json:"attempts"`
	}
	if err := json.Unmarshal(body, &task); err != nil || task.Attempts == nil {
		return json.RawMessage(`[]`)
	}
	return task.Attempts
}
