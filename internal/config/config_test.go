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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
api_url: http://127.0.0.1:50492/api
http:
  timeout: 10s
wait:
  interval: 500ms
  timeout: 5m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:50492/api", cfg.APIURL)
	assert.Equal(t, 10*time.Second, time.Duration(cfg.HTTP.Timeout))
	assert.Equal(t, 500*time.Millisecond, time.Duration(cfg.Wait.Interval))
	assert.Equal(t, 5*time.Minute, time.Duration(cfg.Wait.Timeout))
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "api_url: http://localhost:9999/api\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPTimeout, time.Duration(cfg.HTTP.Timeout))
	assert.Equal(t, DefaultWaitInterval, time.Duration(cfg.Wait.Interval))
	assert.Zero(t, time.Duration(cfg.Wait.Timeout))
}

func TestLoadMissingDefaultPathIsNotAnError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var cfgErr *pkgerrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "api_url: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *pkgerrors.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadBadDuration(t *testing.T) {
	path := writeConfig(t, "http:\n  timeout: fast\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfigDirRespectsXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "vibe"), got)
}
