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

import "testing"

func TestRatio(t *testing.T) {
	dmp := newDiffer()
	tests := []struct {
		name string
		x, y string
		want float64
	}{
		{
			name: "equal",
			x:    "It was sunny.",
			y:    "It was sunny.",
			want: 1,
		},
		{
			name: "both-empty",
			x:    "",
			y:    "",
			want: 1,
		},
		{
			name: "one-empty",
			x:    "something",
			y:    "",
			want: 0,
		},
		{
			name: "disjoint",
			x:    "abc",
			y:    "xyz",
			want: 0,
		},
		{
			// 13 matched runes out of 13 + 19.
			name: "appended-word",
			x:    "It was sunny.",
			y:    "It was sunny today.",
			want: 2 * 13.0 / 32.0,
		},
		{
			// "kitten" vs "sitting": matched "ittn" is 4 runes out of 6 + 7.
			name: "partial-overlap",
			x:    "kitten",
			y:    "sitting",
			want: 8.0 / 13.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ratio(dmp, tt.x, tt.y)
			if got != tt.want {
				t.Errorf("ratio(%q, %q) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			if sym := ratio(dmp, tt.y, tt.x); sym != got {
				t.Errorf("ratio is not symmetric: (%q, %q) = %v but (%q, %q) = %v",
					tt.x, tt.y, got, tt.y, tt.x, sym)
			}
			if got < 0 || got > 1 {
				t.Errorf("ratio(%q, %q) = %v out of [0, 1]", tt.x, tt.y, got)
			}
		})
	}
}

func TestRatioMultibyte(t *testing.T) {
	dmp := newDiffer()
	// 3 matched runes out of 4 + 4; byte counting would get this wrong.
	got := ratio(dmp, "예산은 ", "예산이 ")
	want := 2 * 3.0 / 8.0
	if got != want {
		t.Errorf("ratio = %v, want %v", got, want)
	}
}
