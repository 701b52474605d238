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

// createAndStartRequest matches the server's combined create-and-start
// endpoint. The inner task payload carries explicit nulls for the fields
// the CLI never sets, so they serialize without omitempty.
type createAndStartRequest struct {
	Task              taskPayload     `json:"task"`
	ExecutorProfileID executorProfile `json:"executor_profile_id"`
	BaseBranch        string          `json:"base_branch"`
	UseExistingBranch bool            `json:"use_existing_branch"`
	CustomBranch      *string         `json:"custom_branch"`
}

type taskPayload struct {
	ProjectID         string  `json:"project_id"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Status            *string `json:"status"`
	ParentTaskAttempt *string `json:"parent_task_attempt"`
	ImageIDs          *string `json:"image_ids"`
	SharedTaskID      *string `json:"shared_task_id"`
}

type executorProfile struct {
	Executor string `json:"executor"`
}

// NewCreateAndStartCommand creates the tasks create-and-start command.
func NewCreateAndStartCommand() *cobra.Command {
	var (
		projectID         string
		title             string
		description       string
		executor          string
		baseBranch        string
		customBranch      string
		useExistingBranch bool
	)

	cmd := &cobra.Command{
		Use:   "create-and-start",
		Short: "Create a task and start an attempt immediately",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("project_id", projectID); err != nil {
				return err
			}
			if err := shared.ValidateChoice("executor", executor, shared.Executors); err != nil {
				return err
			}

			body := createAndStartRequest{
				Task: taskPayload{
					ProjectID:   projectID,
					Title:       title,
					Description: description,
				},
				ExecutorProfileID: executorProfile{Executor: executor},
				BaseBranch:        baseBranch,
				UseExistingBranch: useExistingBranch,
			}
			if customBranch != "" {
				body.CustomBranch = &customBranch
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Post(ctx, "/tasks/create-and-start", body)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&projectID, "project-id", "", "Project ID (UUID)")
	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&description, "description", "", "Task description")
	cmd.Flags().StringVar(&executor, "executor", "", "Executor to use")
	cmd.Flags().StringVar(&baseBranch, "base-branch", "", "Base branch name")
	cmd.Flags().StringVar(&customBranch, "custom-branch", "", "Custom branch name (overrides auto-generated branch)")
	cmd.Flags().BoolVar(&useExistingBranch, "use-existing-branch", false, "Use base branch as working branch instead of creating a new one")
	cmd.MarkFlagRequired("project-id")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("executor")
	cmd.MarkFlagRequired("base-branch")

	return cmd
}
