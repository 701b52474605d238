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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vibe-teams/vibe-cli/internal/cli"
	"github.com/vibe-teams/vibe-cli/internal/commands/attempts"
	configcmd "github.com/vibe-teams/vibe-cli/internal/commands/config"
	"github.com/vibe-teams/vibe-cli/internal/commands/executors"
	"github.com/vibe-teams/vibe-cli/internal/commands/projects"
	"github.com/vibe-teams/vibe-cli/internal/commands/tags"
	"github.com/vibe-teams/vibe-cli/internal/commands/tasks"
	versioncmd "github.com/vibe-teams/vibe-cli/internal/commands/version"
)

// Version information (injected via ldflags at build time)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	// Set version information from build-time ldflags
	cli.SetVersion(version, commit, buildDate)

	// Create root command and add subcommands
	rootCmd := cli.NewRootCommand()

	// Resource commands
	rootCmd.AddCommand(projects.NewCommand())
	rootCmd.AddCommand(tasks.NewCommand())
	rootCmd.AddCommand(attempts.NewCommand())
	rootCmd.AddCommand(tags.NewCommand())

	// Server configuration and introspection
	rootCmd.AddCommand(configcmd.NewCommand())
	rootCmd.AddCommand(executors.NewCommand())

	// Version command
	rootCmd.AddCommand(versioncmd.NewVersionCommand())

	// Machine-readable help
	rootCmd.SetHelpCommand(cli.NewHelpCommand(rootCmd))

	// Ctrl-C cancels in-flight requests and long waits.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cli.HandleExitError(err)
	}
}
