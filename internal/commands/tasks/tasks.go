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

// Package tasks provides CLI commands for managing tasks.
package tasks

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the tasks command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
		Long: `Manage tasks on the vibe-kanban board.

Tasks belong to a project and move through todo, in-progress, in-review,
done, and cancelled.

Examples:
  # List a project's tasks
  vibe tasks list --project-id <uuid>

  # Create a task and start an agent on it immediately
  vibe tasks create-and-start --project-id <uuid> --title "Add auth" \
      --executor CLAUDE_CODE --base-branch main

  # Block until a running task finishes
  vibe tasks wait <id> --timeout 10m`,
	}

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewCreateCommand())
	cmd.AddCommand(NewCreateAndStartCommand())
	cmd.AddCommand(NewUpdateCommand())
	cmd.AddCommand(NewDeleteCommand())
	cmd.AddCommand(NewWaitCommand())

	return cmd
}
