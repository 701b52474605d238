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

// Package shared holds flag state, error formatting, and helpers used by
// every command group.
package shared

// Global flag values - set by root command
var (
	verboseFlag bool
	jsonLogFlag bool
	yesFlag     bool
	jqFlag      string
	configFlag  string

	// Build-time version information
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// RegisterFlagPointers returns pointers to flag variables for binding.
// Called by the root command to register persistent flags.
func RegisterFlagPointers() (verbose, jsonLog, yes *bool, jqExpr, configPath *string) {
	return &verboseFlag, &jsonLogFlag, &yesFlag, &jqFlag, &configFlag
}

// SetVersion sets the version information (called from main)
func SetVersion(v, c, b string) {
	version = v
	commit = c
	buildDate = b
}

// GetVersion returns version information.
func GetVersion() (string, string, string) {
	return version, commit, buildDate
}

// GetVerbose returns the verbose flag value.
func GetVerbose() bool {
	return verboseFlag
}

// GetJSONLog returns whether logs should be emitted as JSON.
func GetJSONLog() bool {
	return jsonLogFlag
}

// GetYes returns whether confirmation prompts are skipped.
func GetYes() bool {
	return yesFlag
}

// GetJQ returns the jq output filter expression, empty when unset.
func GetJQ() string {
	return jqFlag
}

// GetConfigPath returns the config file path, empty for the default.
func GetConfigPath() string {
	return configFlag
}
