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

// Package attempts provides CLI commands for managing task attempts.
package attempts

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the attempts command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attempts",
		Short: "Manage task attempts",
		Long: `Manage task attempts, the agent executions the server runs against a task.

An attempt checks out a working branch, runs the chosen executor, and can
be followed up, stopped, merged, pushed, or turned into a pull request.

Examples:
  # Start an attempt on a task
  vibe attempts create --task-id <uuid> --executor CLAUDE_CODE --base-branch main

  # Send follow-up instructions to a running attempt
  vibe attempts followup <id> --prompt "Add unit tests"

  # Open a pull request from a finished attempt
  vibe attempts push <id>
  vibe attempts pr <id> --title "Add OAuth2 authentication"`,
	}

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewCreateCommand())
	cmd.AddCommand(NewFollowupCommand())
	cmd.AddCommand(NewStopCommand())
	cmd.AddCommand(NewMergeCommand())
	cmd.AddCommand(NewPushCommand())
	cmd.AddCommand(NewPRCommand())

	return cmd
}
