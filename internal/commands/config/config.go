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

// Package config provides CLI commands for the server-side configuration.
// The CLI's own config file is a separate concern, handled by --config.
package config

import (
	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

// NewCommand creates the config command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage server configuration",
		Long: `Read and update the vibe-kanban server's configuration.

Examples:
  # Show the current configuration
  vibe config get

  # Change the git branch prefix
  vibe config update --git-branch-prefix vk`,
	}

	cmd.AddCommand(newGetCommand())
	cmd.AddCommand(newUpdateCommand())

	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get current config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Get(ctx, "/config", nil)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}
}

func newUpdateCommand() *cobra.Command {
	var (
		gitBranchPrefix  string
		editor           string
		analyticsEnabled bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{}
			if gitBranchPrefix != "" {
				body["git_branch_prefix"] = gitBranchPrefix
			}
			if editor != "" {
				body["editor"] = editor
			}
			if cmd.Flags().Changed("analytics-enabled") {
				body["analytics_enabled"] = analyticsEnabled
			}
			if len(body) == 0 {
				return &pkgerrors.ValidationError{
					Field:   "update",
					Message: "no fields to update specified",
					Hint:    "pass at least one of --git-branch-prefix, --editor, --analytics-enabled",
				}
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Put(ctx, "/config", body)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&gitBranchPrefix, "git-branch-prefix", "", "Git branch prefix")
	cmd.Flags().StringVar(&editor, "editor", "", "Editor command")
	cmd.Flags().BoolVar(&analyticsEnabled, "analytics-enabled", false, "Enable analytics")

	return cmd
}
