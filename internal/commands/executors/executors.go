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

// Package executors provides CLI commands for inspecting available executors.
package executors

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/vibe-teams/vibe-cli/internal/client"
	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
)

// NewCommand creates the executors command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "executors",
		Short: "Inspect available executors",
	}

	cmd.AddCommand(newListCommand())

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available executors and their configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			env, err := shared.BuildEnv(ctx)
			if err != nil {
				return err
			}

			raw, err := env.Client.Get(ctx, "/info", nil)
			if err != nil {
				return err
			}
			return env.Printer.Print(ctx, projectExecutors(raw))
		},
	}
}

// projectExecutors narrows the server info payload to its executors field,
// wrapped as {"executors": ...}. Payloads without one pass through whole.
func projectExecutors(raw json.RawMessage) json.RawMessage {
	inner, ok := client.UnwrapData(raw)
	if !ok {
		return raw
	}
	var info struct {
		Executors json.RawMessage `json:"executors"`
	}
	if err := json.Unmarshal(inner, &info); err != nil || info.Executors == nil {
		return raw
	}
	out, err := json.Marshal(map[string]json.RawMessage{"executors": info.Executors})
	if err != nil {
		return raw
	}
	return out
}
