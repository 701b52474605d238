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

// Package cli wires the root cobra command and its global flags.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
)

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	shared.SetVersion(v, c, b)
}

// NewRootCommand creates the root Cobra command for the vibe CLI
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vibe",
		Short: "vibe - command-line client for vibe-kanban",
		Long: `vibe is a command-line client for a locally running vibe-kanban server.

It manages projects, tasks, task attempts, tags, and server configuration
over the server's REST API. The server is discovered automatically through
its port file; set VIBE_API_URL to pin a specific instance when several
are running.

All commands print the server's JSON response to stdout, so output
composes with jq and shell pipelines.`,
		SilenceUsage:  true, // Don't show usage on errors
		SilenceErrors: true, // We handle errors ourselves for proper exit codes
	}

	// Get flag pointers from shared package
	verbose, jsonLog, yes, jqExpr, configPath := shared.RegisterFlagPointers()

	// Add global flags
	cmd.PersistentFlags().BoolVarP(verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVar(jsonLog, "json-log", false, "Emit logs as JSON")
	cmd.PersistentFlags().BoolVarP(yes, "yes", "y", false, "Skip confirmation prompts")
	cmd.PersistentFlags().StringVar(jqExpr, "jq", "", "Filter JSON output with a jq expression")
	cmd.PersistentFlags().StringVar(configPath, "config", "", "Path to config file (default: ~/.config/vibe/config.yaml)")

	return cmd
}

// GetVersion returns version information
func GetVersion() (string, string, string) {
	return shared.GetVersion()
}

// HandleExitError handles exit errors with proper exit codes
func HandleExitError(err error) {
	shared.HandleExitError(err)
}
