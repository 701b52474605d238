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
	"github.com/google/uuid"

	pkgerrors "github.com/vibe-teams/vibe-cli/pkg/errors"
)

// ValidateID checks that a positional argument is a well-formed UUID before
// it is interpolated into a request path. The server uses UUIDs for every
// resource identifier, so a malformed one can be rejected locally.
func ValidateID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return &pkgerrors.ValidationError{
			Field:   field,
			Message: "must be a UUID",
			Hint:    "run the matching list command to look up valid ids",
		}
	}
	return nil
}
