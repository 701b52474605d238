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

package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/vibe-teams/vibe-cli/internal/client"
	"github.com/vibe-teams/vibe-cli/internal/commands/shared"
)

// statusInProgress is the server-side serialization of the in-progress
// task state. It is the only status the wait loop keeps polling on.
const statusInProgress = "inprogress"

// fetchFunc retrieves the task resource being waited on.
type fetchFunc func(ctx context.Context) (json.RawMessage, error)

// pollOptions carries the loop's tunables plus injectable time sources so
// tests never sleep or touch a real clock.
type pollOptions struct {
	TaskID   string
	Interval time.Duration
	Timeout  time.Duration // zero means unbounded
	Sleep    func(time.Duration)
	Now      func() time.Time
	Progress io.Writer // human-readable progress, normally stderr
}

// pollTimeoutError reports that the overall wait budget elapsed before the
// task left the in-progress state.
type pollTimeoutError struct {
	Budget time.Duration
}

func (e *pollTimeoutError) Error() string {
	return fmt.Sprintf("timeout after %s", e.Budget)
}

func (e *pollTimeoutError) UserMessage() string {
	return fmt.Sprintf("Timeout after %s", e.Budget)
}

func (e *pollTimeoutError) Suggestion() string {
	return ""
}

// waitForTask polls fetch until the task's status is anything other than
// in-progress, then returns the final raw response. A task that is already
// not in-progress returns immediately with zero sleeps. The overall timeout
// is checked before each sleep.
func waitForTask(ctx context.Context, fetch fetchFunc, opts pollOptions) (json.RawMessage, error) {
	raw, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	status := taskStatus(raw)
	if status != statusInProgress {
		progress(opts, fmt.Sprintf("Task is not in-progress (current status: %s)", status))
		return raw, nil
	}

	progress(opts, fmt.Sprintf("Waiting for task %s to complete...", opts.TaskID))
	progress(opts, fmt.Sprintf("Current status: %s", status))

	start := opts.Now()
	for {
		if opts.Timeout > 0 && opts.Now().Sub(start) >= opts.Timeout {
			return nil, &pollTimeoutError{Budget: opts.Timeout}
		}

		opts.Sleep(opts.Interval)

		raw, err = fetch(ctx)
		if err != nil {
			return nil, err
		}

		status = taskStatus(raw)
		if status != statusInProgress {
			progress(opts, fmt.Sprintf("Task completed with status: %s", status))
			return raw, nil
		}
	}
}

// progress writes one styled line to the progress stream. Styling degrades
// to plain text when stderr is not a terminal.
func progress(opts pollOptions, msg string) {
	fmt.Fprintln(opts.Progress, shared.RenderProgress(msg))
}

// taskStatus extracts the status field from a task response, looking inside
// the data envelope when present. Unknown shapes yield an empty status,
// which the loop treats as terminal.
func taskStatus(raw json.RawMessage) string {
	body := raw
	if inner, ok := client.UnwrapData(raw); ok {
		body = inner
	}
	var task struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &task); err != nil {
		return ""
	}
	return task.Status
}
