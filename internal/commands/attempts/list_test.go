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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectAttempts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "enveloped task with attempts",
			raw:  `{"success":true,"data":{"id":"t1","attempts":[{"id":"a1"}]}}`,
			want: `[{"id":"a1"}]`,
		},
		{
			name: "bare task with attempts",
			raw:  `{"id":"t1","attempts":[]}`,
			want: `[]`,
		},
		{
			name: "task without attempts field",
			raw:  `{"data":{"id":"t1","status":"todo"}}`,
			want: `[]`,
		},
		{
			name: "non-object payload",
			raw:  `"oops"`,
			want: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := projectAttempts(json.RawMessage(tt.raw))
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}
