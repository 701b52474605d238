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
	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

// NewUpdateCommand creates the tasks update command.
func NewUpdateCommand() *cobra.Command {
	var (
		title       string
		description string
		status      string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("id", args[0]); err != nil {
				return err
			}
			if err := shared.ValidateChoice("status", status, shared.TaskStatuses); err != nil {
				return err
			}

			body := map[string]any{}
			if title != "" {
				body["title"] = title
			}
			if description != "" {
				body["description"] = description
			}
			if status != "" {
				body["status"] = status
			}
			if len(body) == 0 {
				return &pkgerrors.ValidationError{
					Field:   "update",
					Message: "no fields to update specified",
					Hint:    "pass at least one of --title, --description, --status",
				}
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Put(ctx, "/tasks/"+args[0], body)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&status, "status", "", "New status")

	return cmd
}
