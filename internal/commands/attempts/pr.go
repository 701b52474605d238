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

// NewPRCommand creates the attempts pr command.
func NewPRCommand() *cobra.Command {
	var (
		title        string
		body         string
		targetBranch string
	)

	cmd := &cobra.Command{
		Use:   "pr <id>",
		Short: "Create a pull request for an attempt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("id", args[0]); err != nil {
				return err
			}

			payload := map[string]any{"title": title}
			if body != "" {
				payload["body"] = body
			}
			if targetBranch != "" {
				payload["target_branch"] = targetBranch
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Post(ctx, "/task-attempts/"+args[0]+"/pr", payload)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "PR title")
	cmd.Flags().StringVar(&body, "body", "", "PR body/description")
	cmd.Flags().StringVar(&targetBranch, "target-branch", "", "Target branch for PR")
	cmd.MarkFlagRequired("title")

	return cmd
}
