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
)

// NewCreateCommand creates the projects create command.
func NewCreateCommand() *cobra.Command {
	var (
		name          string
		gitRepoPath   string
		setupScript   string
		devScript     string
		cleanupScript string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"name":          name,
				"git_repo_path": gitRepoPath,
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

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Post(ctx, "/projects", body)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Project name")
	cmd.Flags().StringVar(&gitRepoPath, "git-repo-path", "", "Path to git repository")
	cmd.Flags().StringVar(&setupScript, "setup-script", "", "Setup script to run")
	cmd.Flags().StringVar(&devScript, "dev-script", "", "Dev server script")
	cmd.Flags().StringVar(&cleanupScript, "cleanup-script", "", "Cleanup script")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("git-repo-path")

	return cmd
}
