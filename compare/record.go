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

import (
	"github.com/shopspring/decimal"

	"github.com/sotang85/word-file-check/sentence"
)

// Record describes one aligned sentence of a comparison run.
//
//   - For Unchanged and Modified, both A and B contain the aligned sentences.
//   - For Deleted, A contains the deleted sentence and B is unset (zero value).
//   - For Inserted, B contains the inserted sentence and A is unset (zero value).
//
// Every sentence of the original document appears in exactly one record as A, and every sentence
// of the revised document appears in exactly one record as B. Records are ordered so that the set
// A indexes and the set of B indexes are each strictly increasing across the sequence.
type Record struct {
	Op         Op
	Similarity float64 // in [0, 1]; meaningful for Modified (and 1.0 for Unchanged)
	A, B       sentence.Sentence
	Words      []WordEdit // word-level edit script, set only for Modified
}

// IndexA returns the record's sentence index in the original document, or -1 for Inserted
// records.
func (r Record) IndexA() int {
	if r.Op == Inserted {
		return -1
	}
	return r.A.Index
}

// IndexB returns the record's sentence index in the revised document, or -1 for Deleted records.
func (r Record) IndexB() int {
	if r.Op == Deleted {
		return -1
	}
	return r.B.Index
}

// WordEdit is a single token of a modified sentence's edit script.
//
// Original is set for TagKept, TagRemoved, and TagNumericChanged; Revised is set for TagKept,
// TagInserted, and TagNumericChanged. Concatenating the Original of every kept, removed, and
// numeric-changed edit in order reproduces the original sentence; likewise the Revised of every
// kept, inserted, and numeric-changed edit reproduces the revised sentence.
type WordEdit struct {
	Tag      Tag
	Original string
	Revised  string

	// Numeric reports whether the token looks like a number under the run's numeric format.
	Numeric bool

	// Delta is the signed difference revised − original of a numeric-changed pair. It is nil for
	// every other tag, and nil when either side of the pair does not parse as a number.
	Delta *decimal.Decimal
}

// DeltaString formats the edit's delta with an explicit sign, e.g. "+250", "-3", "0", "+34.5".
// It returns "" when Delta is nil.
func (e WordEdit) DeltaString() string {
	if e.Delta == nil {
		return ""
	}
	return formatDelta(*e.Delta)
}
