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

// Package output renders command results to stdout. Successful results are
// always pretty-printed JSON so the tool composes with jq and shell
// pipelines; human-oriented status lines belong on stderr.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vibe-teams/vibe-cli/internal/jq"
)

// Printer renders JSON results, optionally through a jq filter.
type Printer struct {
	out    io.Writer
	filter *jq.Filter
}

// NewPrinter creates a printer writing to stdout.
func NewPrinter(filter *jq.Filter) *Printer {
	return &Printer{out: os.Stdout, filter: filter}
}

// NewPrinterTo creates a printer writing to w. Used by tests.
func NewPrinterTo(w io.Writer, filter *jq.Filter) *Printer {
	return &Printer{out: w, filter: filter}
}

// Print pretty-prints a raw JSON value with 2-space indentation, applying
// the jq filter first when one is configured.
func (p *Printer) Print(ctx context.Context, raw json.RawMessage) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}

	if p.filter != nil {
		filtered, err := p.filter.Apply(ctx, value)
		if err != nil {
			return err
		}
		value = filtered
	}

	return EmitJSON(p.out, value)
}

// EmitJSON writes a value as pretty-printed JSON. Formatting is idempotent:
// re-parsing the output yields a value deep-equal to the input.
func EmitJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}
