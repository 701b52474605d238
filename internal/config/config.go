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

// Package config loads optional client settings from the user's config file.
//
// The file is entirely optional: a missing file yields defaults. The
// VIBE_API_URL environment variable always takes precedence over the file's
// api_url, because it is the documented escape hatch when several servers
// are running.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

// Default values applied when the config file is absent or partial.
const (
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultWaitInterval = 2 * time.Second
)

// Config holds client-side settings for the vibe CLI.
type Config struct {
	// APIURL overrides server discovery with a fixed base URL.
	// Lower priority than the VIBE_API_URL environment variable.
	APIURL string `yaml:"api_url,omitempty"`

	HTTP HTTPConfig `yaml:"http,omitempty"`
	Wait WaitConfig `yaml:"wait,omitempty"`
}

// HTTPConfig controls the request pipeline.
type HTTPConfig struct {
	// Timeout bounds a single HTTP exchange (connect + response).
	Timeout Duration `yaml:"timeout,omitempty"`
}

// WaitConfig controls the `tasks wait` poll loop defaults.
// Flags on the command override these.
type WaitConfig struct {
	// Interval is the sleep between polls.
	Interval Duration `yaml:"interval,omitempty"`

	// Timeout is the overall poll budget. Zero means unbounded.
	Timeout Duration `yaml:"timeout,omitempty"`
}

// Duration wraps time.Duration for YAML values like "30s" or "2m".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	if parsed < 0 {
		return fmt.Errorf("duration %q must not be negative", raw)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		HTTP: HTTPConfig{Timeout: Duration(DefaultHTTPTimeout)},
		Wait: WaitConfig{Interval: Duration(DefaultWaitInterval)},
	}
}

// Load reads the config file at path. An empty path means the default
// location. A missing file is not an error; malformed YAML is.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		if explicit {
			return nil, &pkgerrors.ConfigError{Path: path, Cause: err}
		}
		return Default(), nil
	}
	if err != nil {
		return nil, &pkgerrors.ConfigError{Path: path, Cause: err}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &pkgerrors.ConfigError{Path: path, Cause: err}
	}

	// Partial files must not zero out defaults.
	if cfg.HTTP.Timeout == 0 {
		cfg.HTTP.Timeout = Duration(DefaultHTTPTimeout)
	}
	if cfg.Wait.Interval == 0 {
		cfg.Wait.Interval = Duration(DefaultWaitInterval)
	}

	return cfg, nil
}
