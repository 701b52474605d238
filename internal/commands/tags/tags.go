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

// Package tags provides CLI commands for managing tags.
package tags

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

// NewCommand creates the tags command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Manage tags",
		Long: `Manage tags used to categorize tasks.

Examples:
  # List all tags
  vibe tags list

  # Create a tag
  vibe tags create --name backend --content "Server-side work"`,
	}

	cmd.AddCommand(newListCommand())
	cmd.AddCommand(newCreateCommand())
	cmd.AddCommand(newUpdateCommand())
	cmd.AddCommand(newDeleteCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Get(ctx, "/tags", nil)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}
}

func newCreateCommand() *cobra.Command {
	var (
		name    string
		content string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"tag_name": name}
			if content != "" {
				body["content"] = content
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Post(ctx, "/tags", body)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tag name (no spaces)")
	cmd.Flags().StringVar(&content, "content", "", "Tag content")
	cmd.MarkFlagRequired("name")

	return cmd
}

func newUpdateCommand() *cobra.Command {
	var (
		name    string
		content string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("id", args[0]); err != nil {
				return err
			}

			body := map[string]any{}
			if name != "" {
				body["tag_name"] = name
			}
			if content != "" {
				body["content"] = content
			}
			if len(body) == 0 {
				return &pkgerrors.ValidationError{
					Field:   "update",
					Message: "no fields to update specified",
					Hint:    "pass --name or --content",
				}
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Put(ctx, "/tags/"+args[0], body)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New tag name")
	cmd.Flags().StringVar(&content, "content", "", "New content")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("id", args[0]); err != nil {
				return err
			}

			confirmed, err := shared.ConfirmDelete(fmt.Sprintf("Delete tag %s?", args[0]))
			if err != nil {
				return err
			}
			if !confirmed {
				return nil
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			if _, err := env.Client.Delete(ctx, "/tags/"+args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), shared.RenderOK(fmt.Sprintf("Tag %s deleted", args[0])))
			return nil
		},
	}
}
