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

package projects

import (
	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

// NewUpdateCommand creates the projects update command.
func NewUpdateCommand() *cobra.Command {
	var (
		name          string
		gitRepoPath   string
		setupScript   string
		devScript     string
		cleanupScript string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("id", args[0]); err != nil {
				return err
			}

			body := map[string]any{}
			if name != "" {
				body["name"] = name
			}
			if gitRepoPath != "" {
				body["git_repo_path"] = gitRepoPath
			}
			if setupScript != "" {
				body["setup_script"] = setupScript
			}
			if devScript != "" {
				body["dev_script"] = devScript
			}
			if cleanupScript != "" {
				body["cleanup_script"] = cleanupScript
			}
			if len(body) == 0 {
				return &pkgerrors.ValidationError{
					Field:   "update",
					Message: "no fields to update specified",
					Hint:    "pass at least one field flag, e.g. --name",
				}
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Put(ctx, "/projects/"+args[0], body)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New project name")
	cmd.Flags().StringVar(&gitRepoPath, "git-repo-path", "", "New git repo path")
	cmd.Flags().StringVar(&setupScript, "setup-script", "", "Setup script")
	cmd.Flags().StringVar(&devScript, "dev-script", "", "Dev server script")
	cmd.Flags().StringVar(&cleanupScript, "cleanup-script", "", "Cleanup script")

	return cmd
}
