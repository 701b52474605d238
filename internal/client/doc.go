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

// Package client talks to a locally running vibe-kanban server.
//
// It has two responsibilities: resolving which server instance to talk to
// (environment override, port-file discovery with a process-table
// cross-check, fixed default) and the uniform request/response/error
// pipeline every command goes through. Resolution happens exactly once per
// invocation and is never cached across runs.
package client
