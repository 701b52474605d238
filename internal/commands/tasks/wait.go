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

package tasks

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
	"github.com/vibe-teams/vibe-cli/internal/log"
)

// NewWaitCommand creates the tasks wait command.
func NewWaitCommand() *cobra.Command {
	var (
		interval time.Duration
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait <id>",
		Short: "Wait for a task to leave the in-progress state",
		Long: `Poll a task until its status is anything other than in-progress.

Progress lines go to stderr; the final task JSON goes to stdout, so the
command composes with jq and shell pipelines. A task that is not
in-progress returns immediately.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := shared.ValidateID("id", args[0]); err != nil {
				return err
			}

			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			// Flags win; unset flags fall back to the config file.
			if !cmd.Flags().Changed("interval") {
				if v := time.Duration(env.Config.Wait.Interval); v > 0 {
					interval = v
				}
			}
			if !cmd.Flags().Changed("timeout") {
				timeout = time.Duration(env.Config.Wait.Timeout)
			}

			fetch := func(ctx context.Context) (json.RawMessage, error) {
				return env.Client.Get(ctx, "/tasks/"+args[0], nil)
			}

			env.Logger.Debug("polling task",
				slog.String(log.TaskIDKey, args[0]),
				slog.Duration("interval", interval))

			raw, err := waitForTask(ctx, fetch, pollOptions{
				TaskID:   args[0],
				Interval: interval,
				Timeout:  timeout,
				Sleep:    time.Sleep,
				Now:      time.Now,
				Progress: cmd.ErrOrStderr(),
			})
			if err != nil {
				env.Logger.Debug("wait aborted",
					slog.String(log.TaskIDKey, args[0]), log.Error(err))
				return err
			}
			return env.Printer.Print(ctx, raw)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Polling interval")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall timeout, 0 for none")

	return cmd
}
