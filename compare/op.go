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

package compare

// Op classifies a sentence record.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Unchanged Op = iota // the sentence appears in both documents with an identical comparison key
	Modified            // the same sentence, edited; similarity reached the threshold
	Deleted             // the sentence appears only in the original document
	Inserted            // the sentence appears only in the revised document
)

// Tag classifies a single token of a modified sentence's word-level edit script.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Tag -trimprefix=Tag
type Tag int

const (
	TagKept           Tag = iota // token present in both sentences
	TagRemoved                   // token present only in the original sentence
	TagInserted                  // token present only in the revised sentence
	TagNumericChanged            // a removed/inserted pair of numeric tokens, folded into one edit
)
