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
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vibe-teams/vibe-cli/internal/client"
	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

func TestWriteExitErrorAPIError(t *testing.T) {
	var buf bytes.Buffer
	writeExitError(&buf, &client.APIError{Status: 404, Message: "not found"})
	assert.Equal(t, "Error 404: not found\n", buf.String())
}

func TestWriteExitErrorWithSuggestion(t *testing.T) {
	var buf bytes.Buffer
	writeExitError(&buf, &pkgerrors.ConfigError{
		Path:  "/tmp/config.yaml",
		Cause: errors.New("yaml: line 3: mapping values are not allowed"),
	})
	out := buf.String()
	assert.Contains(t, out, "Error: ")
	assert.Contains(t, out, "\n\nFix or remove /tmp/config.yaml and retry.\n")
}

func TestWriteExitErrorWrapped(t *testing.T) {
	var buf bytes.Buffer
	inner := &client.APIError{Status: 500, Message: "boom"}
	writeExitError(&buf, fmt.Errorf("listing projects: %w", inner))
	assert.Equal(t, "Error 500: boom\n", buf.String())
}

func TestWriteExitErrorGeneric(t *testing.T) {
	var buf bytes.Buffer
	writeExitError(&buf, errors.New("something broke"))
	assert.Equal(t, "Error: something broke\n", buf.String())
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("project_id", "1d2a6a64-7a39-4be2-9d1c-5c8f0a3b9e77"))

	err := ValidateID("project_id", "not-a-uuid")
	assert.Error(t, err)
	var verr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, "project_id", verr.Field)
}
