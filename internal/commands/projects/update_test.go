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

package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

func TestUpdateRejectsEmptyFieldSet(t *testing.T) {
	cmd := NewUpdateCommand()
	cmd.SetArgs([]string{"1d2a6a64-7a39-4be2-9d1c-5c8f0a3b9e77"})

	err := cmd.Execute()
	require.Error(t, err)

	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "no fields to update")
}

func TestUpdateRejectsMalformedID(t *testing.T) {
	cmd := NewUpdateCommand()
	cmd.SetArgs([]string{"not-a-uuid", "--name", "renamed"})

	err := cmd.Execute()
	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "id", verr.Field)
}

func TestGetRejectsMalformedID(t *testing.T) {
	cmd := NewGetCommand()
	cmd.SetArgs([]string{"42"})

	err := cmd.Execute()
	var verr *pkgerrors.ValidationError
	require.ErrorAs(t, err, &verr)
}
