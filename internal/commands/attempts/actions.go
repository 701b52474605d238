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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
)

// runAction posts a bodyless lifecycle action against an attempt. Servers
// answer these with an empty body on success, in which case a generic
// past-tense line is printed instead of JSON.
func runAction(cmd *cobra.Command, id, path, doneVerb string) error {
	if err := shared.ValidateID("id", id); err != nil {
		return err
	}

	ctx := cmd.Context()
	env, err := shared.BuildEnv(ctx)
	if err != nil {
		return err
	}

	raw, err := env.Client.Post(ctx, path, nil)
	if err != nil {
		return err
	}
	if raw == nil {
		fmt.Fprintln(cmd.OutOrStdout(), shared.RenderOK(fmt.Sprintf("Attempt %s %s", id, doneVerb)))
		return nil
	}
	return env.Printer.Print(ctx, raw)
}

// NewStopCommand creates the attempts stop command.
func NewStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <id>",
		Short: "Stop an attempt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], "/task-attempts/"+args[0]+"/stop", "stopped")
		},
	}
}

// NewMergeCommand creates the attempts merge command.
func NewMergeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <id>",
		Short: "Merge an attempt's changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, args[0], "/task-attempts/"+args[0]+"/merge", "merged")
		},
	}
}

// NewPushCommand creates the attempts push command.
func NewPushCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "push <id>",
		Short: "Push an attempt's branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/task-attempts/" + args[0] + "/push"
			if force {
				path += "/force"
			}
			return runAction(cmd, args[0], path, "pushed")
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Force push")

	return cmd
}
