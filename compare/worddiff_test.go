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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"github.com/sotang85/word-file-check/internal/config"
)

func TestWordDiff(t *testing.T) {
	tests := []struct {
		name     string
		original string
		revised  string
		want     []WordEdit
	}{
		{
			name:     "single-word-replaced",
			original: "The quick fox",
			revised:  "The slow fox",
			want: []WordEdit{
				{Tag: TagKept, Original: "The", Revised: "The"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagRemoved, Original: "quick"},
				{Tag: TagInserted, Revised: "slow"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagKept, Original: "fox", Revised: "fox"},
			},
		},
		{
			name:     "word-appended",
			original: "It was sunny.",
			revised:  "It was sunny today.",
			want: []WordEdit{
				{Tag: TagKept, Original: "It", Revised: "It"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagKept, Original: "was", Revised: "was"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagKept, Original: "sunny", Revised: "sunny"},
				{Tag: TagInserted, Revised: " "},
				{Tag: TagInserted, Revised: "today"},
				{Tag: TagKept, Original: ".", Revised: "."},
			},
		},
		{
			name:     "numeric-change-folded",
			original: "The budget is 1,000 dollars.",
			revised:  "The budget is 1,250 dollars.",
			want: []WordEdit{
				{Tag: TagKept, Original: "The", Revised: "The"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagKept, Original: "budget", Revised: "budget"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagKept, Original: "is", Revised: "is"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagNumericChanged, Original: "1,000", Revised: "1,250", Numeric: true, Delta: dec(t, "250")},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagKept, Original: "dollars", Revised: "dollars"},
				{Tag: TagKept, Original: ".", Revised: "."},
			},
		},
		{
			name:     "negative-to-negative-delta",
			original: "balance -1,234.5 end",
			revised:  "balance -1,200.0 end",
			want: []WordEdit{
				{Tag: TagKept, Original: "balance", Revised: "balance"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagNumericChanged, Original: "-1,234.5", Revised: "-1,200.0", Numeric: true, Delta: dec(t, "34.5")},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagKept, Original: "end", Revised: "end"},
			},
		},
		{
			name:     "unparsable-numeric-pair-has-nil-delta",
			original: "v 1.2.3 shipped",
			revised:  "v 1.2.4 shipped",
			want: []WordEdit{
				{Tag: TagKept, Original: "v", Revised: "v"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagNumericChanged, Original: "1.2.3", Revised: "1.2.4", Numeric: true},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagKept, Original: "shipped", Revised: "shipped"},
			},
		},
		{
			name:     "numeric-inserted-without-removal",
			original: "Count: items",
			revised:  "Count: 5 items",
			want: []WordEdit{
				{Tag: TagKept, Original: "Count", Revised: "Count"},
				{Tag: TagKept, Original: ":", Revised: ":"},
				{Tag: TagKept, Original: " ", Revised: " "},
				{Tag: TagInserted, Revised: "5", Numeric: true},
				{Tag: TagInserted, Revised: " "},
				{Tag: TagKept, Original: "items", Revised: "items"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wordDiff(tt.original, tt.revised, config.Default)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("wordDiff diff (-want +got):\n%s", diff)
			}
			assertReconstructs(t, got, tt.original, tt.revised)
		})
	}
}

// dec parses a decimal literal for use as an expected delta.
func dec(t *testing.T, s string) *decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return &d
}

// assertReconstructs checks the edit script invariant: the original sides of kept, removed, and
// numeric-changed edits reproduce the original sentence, and the revised sides of kept, inserted,
// and numeric-changed edits reproduce the revised sentence.
func assertReconstructs(t *testing.T, edits []WordEdit, original, revised string) {
	t.Helper()
	var a, b strings.Builder
	for _, e := range edits {
		switch e.Tag {
		case TagKept:
			a.WriteString(e.Original)
			b.WriteString(e.Revised)
		case TagRemoved:
			a.WriteString(e.Original)
		case TagInserted:
			b.WriteString(e.Revised)
		case TagNumericChanged:
			a.WriteString(e.Original)
			b.WriteString(e.Revised)
		}
	}
	if a.String() != original {
		t.Errorf("original does not reconstruct: %q != %q", a.String(), original)
	}
	if b.String() != revised {
		t.Errorf("revised does not reconstruct: %q != %q", b.String(), revised)
	}
}
