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

package tasks

import (
	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
)

// NewCreateCommand creates the tasks create command.
func NewCreateCommand() *cobra.Command {
	var (
		projectID   string
		title       string
		description string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("project_id", projectID); err != nil {
				return err
			}
			if err := shared.ValidateChoice("status", status, shared.TaskStatuses); err != nil {
				return err
			}

			body := map[string]any{
				"project_id": projectID,
				"title":      title,
			}
			if description != "" {
				body["description"] = description
			}
			if status != "" {
				body["status"] = status
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Post(ctx, "/tasks", body)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&projectID, "project-id", "", "Project ID (UUID)")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&status, "status", "", "Initial status (default: todo)")
	cmd.MarkFlagRequired("project-id")
	cmd.MarkFlagRequired("title")

	return cmd
}
