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

package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/sotang85/word-file-check/compare"
	"github.com/sotang85/word-file-check/sentence"
)

func dec(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return &d
}

func TestLayout(t *testing.T) {
	recs := []compare.Record{
		{
			Op: compare.Unchanged,
			A:  sentence.Sentence{Index: 0, Text: "The cat sat.", Paragraph: 0, Postfix: " "},
			B:  sentence.Sentence{Index: 0, Text: "The cat sat.", Paragraph: 0, Postfix: " "},
		},
		{
			Op:         compare.Modified,
			Similarity: 0.9,
			A:          sentence.Sentence{Index: 1, Text: "Price is 100.", Paragraph: 0},
			B:          sentence.Sentence{Index: 1, Text: "Price is 120.", Paragraph: 0},
			Words: []compare.WordEdit{
				{Tag: compare.TagKept, Original: "Price", Revised: "Price"},
				{Tag: compare.TagKept, Original: " ", Revised: " "},
				{Tag: compare.TagKept, Original: "is", Revised: "is"},
				{Tag: compare.TagKept, Original: " ", Revised: " "},
				{Tag: compare.TagNumericChanged, Original: "100", Revised: "120", Numeric: true, Delta: dec(t, "20")},
				{Tag: compare.TagKept, Original: ".", Revised: "."},
			},
		},
		{
			Op: compare.Deleted,
			A:  sentence.Sentence{Index: 2, Text: "Old closing line.", Paragraph: 1},
		},
		{
			Op: compare.Inserted,
			B:  sentence.Sentence{Index: 2, Text: "Brand new ending.", Paragraph: 1},
		},
	}

	want := []Paragraph{
		{Runs: []Run{
			{Text: "The cat sat.", Style: StylePlain},
			{Text: " ", Style: StylePlain},
			{Text: "Price", Style: StylePlain},
			{Text: " ", Style: StylePlain},
			{Text: "is", Style: StylePlain},
			{Text: " ", Style: StylePlain},
			{Text: "120 (Δ +20)", Style: StyleChanged},
			{Text: ".", Style: StylePlain},
		}},
		{Runs: []Run{
			{Text: "Old closing line.", Style: StyleDeleted},
		}},
		{Runs: []Run{
			{Text: "Brand new ending.", Style: StyleInserted},
		}},
	}
	if diff := cmp.Diff(want, Layout(recs)); diff != "" {
		t.Errorf("Layout diff (-want +got):\n%s", diff)
	}
}

func TestLayoutRemovedTokensDropped(t *testing.T) {
	recs := []compare.Record{{
		Op:         compare.Modified,
		Similarity: 0.85,
		A:          sentence.Sentence{Text: "old word here"},
		B:          sentence.Sentence{Text: "new word here"},
		Words: []compare.WordEdit{
			{Tag: compare.TagRemoved, Original: "old"},
			{Tag: compare.TagInserted, Revised: "new"},
			{Tag: compare.TagKept, Original: " word here", Revised: " word here"},
		},
	}}
	want := []Paragraph{{Runs: []Run{
		{Text: "new", Style: StyleChanged},
		{Text: " word here", Style: StylePlain},
	}}}
	if diff := cmp.Diff(want, Layout(recs)); diff != "" {
		t.Errorf("Layout diff (-want +got):\n%s", diff)
	}
}

func TestLayoutEmptyDeletedParagraph(t *testing.T) {
	recs := []compare.Record{{
		Op: compare.Deleted,
		A:  sentence.Sentence{Text: ""},
	}}
	want := []Paragraph{{Runs: []Run{{Text: nbsp, Style: StylePlain}}}}
	if diff := cmp.Diff(want, Layout(recs)); diff != "" {
		t.Errorf("Layout diff (-want +got):\n%s", diff)
	}
}

func TestLayoutZeroDeltaNotAnnotated(t *testing.T) {
	recs := []compare.Record{{
		Op:         compare.Modified,
		Similarity: 0.9,
		A:          sentence.Sentence{Text: "1.0"},
		B:          sentence.Sentence{Text: "1"},
		Words: []compare.WordEdit{
			{Tag: compare.TagNumericChanged, Original: "1.0", Revised: "1", Numeric: true, Delta: dec(t, "0")},
		},
	}}
	got := Layout(recs)
	if len(got) != 1 || len(got[0].Runs) != 1 {
		t.Fatalf("got %+v, want one paragraph with one run", got)
	}
	if run := got[0].Runs[0]; run.Text != "1" || run.Style != StyleChanged {
		t.Errorf("run = %+v, want highlighted %q", run, "1")
	}
}

func TestWriteHTML(t *testing.T) {
	paragraphs := []Paragraph{
		{Runs: []Run{
			{Text: "kept <text> & more", Style: StylePlain},
			{Text: "gone", Style: StyleDeleted},
			{Text: "added", Style: StyleInserted},
			{Text: "edited", Style: StyleChanged},
		}},
		{Runs: []Run{{Text: "line one\nline two", Style: StylePlain}}},
	}
	var b strings.Builder
	if err := WriteHTML(&b, paragraphs); err != nil {
		t.Fatalf("WriteHTML: %v", err)
	}
	out := b.String()
	for _, want := range []string{
		"kept &lt;text&gt; &amp; more",
		"<del>gone</del>",
		"<ins>added</ins>",
		"<mark>edited</mark>",
		"line one<br>line two",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("output is not a standalone page")
	}
}
