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

package shared

import (
	"context"
	"log/slog"
	"time"

	"github.com/vibe-teams/vibe-cli/internal/client"
	"github.com/vibe-teams/vibe-cli/internal/config"
	"github.com/vibe-teams/vibe-cli/internal/jq"
	"github.com/vibe-teams/vibe-cli/internal/log"
	"github.com/vibe-teams/vibe-cli/internal/output"
)

// Env holds the per-invocation dependencies every command needs: a resolved
// API client, a JSON printer honoring --jq, the loaded config, and a logger.
type Env struct {
	Client  *client.Client
	Printer *output.Printer
	Config  *config.Config
	Logger  *slog.Logger
}

// BuildEnv loads configuration, resolves the server endpoint, and
// constructs the API client and output printer from the global flags.
// Endpoint resolution happens exactly once per invocation, here.
func BuildEnv(ctx context.Context) (*Env, error) {
	logger := BuildLogger()

	cfg, err := config.Load(GetConfigPath())
	if err != nil {
		return nil, err
	}

	var filter *jq.Filter
	if expr := GetJQ(); expr != "" {
		filter, err = jq.Compile(expr)
		if err != nil {
			return nil, err
		}
	}

	clientLogger := log.WithComponent(logger, "client")
	resolver := client.DefaultResolver(cfg.APIURL, clientLogger)
	c, err := client.New(ctx,
		client.WithResolver(resolver),
		client.WithTimeout(time.Duration(cfg.HTTP.Timeout)),
		client.WithLogger(clientLogger),
	)
	if err != nil {
		return nil, err
	}

	return &Env{
		Client:  c,
		Printer: output.NewPrinter(filter),
		Config:  cfg,
		Logger:  logger,
	}, nil
}

// BuildLogger constructs the process logger from the global flags. Debug
// level when --verbose, JSON handler when --json-log, warnings otherwise.
func BuildLogger() *slog.Logger {
	logCfg := log.DefaultConfig()
	if GetVerbose() {
		logCfg.Level = "debug"
	}
	if GetJSONLog() {
		logCfg.Format = "json"
	}
	return log.New(logCfg)
}
