// Copyright 2026 The word-file-check Authors
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

// Package compare aligns the sentences of two documents and classifies every sentence as
// unchanged, modified, deleted, or inserted.
//
// The entry point is [New], which validates the configuration once, followed by
// [Comparer.Compare], which runs a full comparison: sentences are normalized according to the
// configured ignore rules, scored pairwise with a similarity ratio in [0, 1], and aligned with a
// bounded look-ahead so that lightly edited sentences pair up as modified while unrelated
// sentences fall apart into deletions and insertions. Modified pairs additionally carry a
// word-level edit script with changed numbers recognized as a single token pair and annotated
// with their arithmetic delta.
//
// A comparison run is a pure function over its inputs: it performs no I/O, retains no state
// between runs, and produces the same output for the same input every time. Distinct runs may
// execute concurrently.
package compare
