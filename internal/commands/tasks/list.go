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
	"net/url"

	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
)

// NewListCommand creates the tasks list command.
func NewListCommand() *cobra.Command {
	var (
		projectID string
		status    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("project_id", projectID); err != nil {
				return err
			}
			if err := shared.ValidateChoice("status", status, shared.TaskStatuses); err != nil {
				return err
			}

			query := url.Values{"project_id": {projectID}}
			if status != "" {
				query.Set("status", status)
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Get(ctx, "/tasks", query)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&projectID, "project-id", "", "Project ID (UUID)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.MarkFlagRequired("project-id")

	return cmd
}
