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

// Package report serializes comparison records into a tabular change report.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sotang85/word-file-check/compare"
)

var header = []string{"type", "sim", "original", "revised", "idxA", "idxB"}

// WriteCSV writes one row per changed record. Unchanged records are omitted; the report is a
// change list, not a document dump. Sentence indexes are 1-based in the output and empty for the
// side a record does not have. The revised text of a modified record carries a numeric delta
// annotation when the record contains numeric changes.
func WriteCSV(w io.Writer, recs []compare.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing report header: %w", err)
	}
	for _, r := range recs {
		if r.Op == compare.Unchanged {
			continue
		}
		if err := cw.Write(row(r)); err != nil {
			return fmt.Errorf("writing report row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(r compare.Record) []string {
	revised := r.B.Text
	if r.Op == compare.Modified {
		revised = Annotate(r)
	}
	idxA, idxB := "", ""
	if i := r.IndexA(); i >= 0 {
		idxA = strconv.Itoa(i + 1)
	}
	if j := r.IndexB(); j >= 0 {
		idxB = strconv.Itoa(j + 1)
	}
	return []string{
		strings.ToLower(r.Op.String()),
		fmt.Sprintf("%.2f", r.Similarity),
		r.A.Text,
		revised,
		idxA,
		idxB,
	}
}

// Annotate returns the record's revised text, suffixed with a numeric change summary when the
// record changes numbers: "text (Δ +250)" for a changed value, "+5 (new)" and "-3 (removed)"
// entries for numbers that only one side has. Records without numeric changes come back verbatim.
func Annotate(r compare.Record) string {
	var notes []string
	changed := false
	for _, e := range r.Words {
		switch {
		case e.Tag == compare.TagNumericChanged:
			if e.Delta == nil {
				continue
			}
			if !e.Delta.IsZero() {
				changed = true
			}
			notes = append(notes, e.DeltaString())
		case e.Tag == compare.TagRemoved && e.Numeric:
			changed = true
			notes = append(notes, "-"+e.Original+" (removed)")
		case e.Tag == compare.TagInserted && e.Numeric:
			changed = true
			notes = append(notes, "+"+e.Revised+" (new)")
		}
	}
	if !changed || len(notes) == 0 {
		return r.B.Text
	}
	return fmt.Sprintf("%s (Δ %s)", r.B.Text, strings.Join(notes, ", "))
}

// Counts summarizes a record sequence by operation.
type Counts struct {
	Unchanged, Modified, Inserted, Deleted int
}

// Count tallies the records of one comparison run.
func Count(recs []compare.Record) Counts {
	var c Counts
	for _, r := range recs {
		switch r.Op {
		case compare.Unchanged:
			c.Unchanged++
		case compare.Modified:
			c.Modified++
		case compare.Inserted:
			c.Inserted++
		case compare.Deleted:
			c.Deleted++
		}
	}
	return c
}
