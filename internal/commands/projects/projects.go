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

// Package projects provides CLI commands for managing projects.
package projects

import (
	"github.com/spf13/cobra"
)

// NewCommand creates the projects command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage projects",
		Long: `Manage projects registered with the vibe-kanban server.

A project points at a local git repository and optionally carries setup,
dev-server, and cleanup scripts.

Examples:
  # List all projects
  vibe projects list

  # Create a project
  vibe projects create --name myapp --git-repo-path /home/me/src/myapp

  # Update a project's dev script
  vibe projects update <id> --dev-script "npm run dev"`,
	}

	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewGetCommand())
	cmd.AddCommand(NewCreateCommand())
	cmd.AddCommand(NewUpdateCommand())
	cmd.AddCommand(NewDeleteCommand())

	return cmd
}
