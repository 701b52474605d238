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
	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
)

// createRequest matches the server's task-attempt creation endpoint.
// custom_branch serializes as an explicit null when unset.
type createRequest struct {
	TaskID            string          `json:"task_id"`
	ExecutorProfileID executorProfile `json:"executor_profile_id"`
	BaseBranch        string          `json:"base_branch"`
	CustomBranch      *string         `json:"custom_branch"`
}

type executorProfile struct {
	Executor string `json:"executor"`
}

// NewCreateCommand creates the attempts create command.
func NewCreateCommand() *cobra.Command {
	var (
		taskID       string
		executor     string
		baseBranch   string
		customBranch string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task attempt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("task_id", taskID); err != nil {
				return err
			}
			if err := shared.ValidateChoice("executor", executor, shared.Executors); err != nil {
				return err
			}

			body := createRequest{
				TaskID:            taskID,
				ExecutorProfileID: executorProfile{Executor: executor},
				BaseBranch:        baseBranch,
			}
			if customBranch != "" {
				body.CustomBranch = &customBranch
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Post(ctx, "/task-attempts", body)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&taskID, "task-id", "", "Task ID (UUID)")
	cmd.Flags().StringVar(&executor, "executor", "", "Executor to use")
	cmd.Flags().StringVar(&baseBranch, "base-branch", "", "Base branch name")
	cmd.Flags().StringVar(&customBranch, "custom-branch", "", "Custom branch name (overrides auto-generated branch)")
	cmd.MarkFlagRequired("task-id")
	cmd.MarkFlagRequired("executor")
	cmd.MarkFlagRequired("base-branch")

	return cmd
}
