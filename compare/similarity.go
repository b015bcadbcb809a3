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
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// newDiffer returns a diff engine configured for exact results. The timeout must stay disabled:
// a timed-out diff is non-minimal and can differ between runs, which would break the symmetry and
// determinism guarantees of the similarity score.
func newDiffer() *diffmatchpatch.DiffMatchPatch {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	return dmp
}

// ratio computes the similarity of two comparison keys as 2·M/(len(x)+len(y)) over runes, where M
// is the number of matched runes in a minimal character diff, i.e. the length of the longest
// common subsequence. The score is in [0, 1], symmetric, 1.0 exactly for equal keys (two empty
// keys included), and 0 for non-empty keys with no runes in common.
func ratio(dmp *diffmatchpatch.DiffMatchPatch, x, y string) float64 {
	if x == y {
		return 1
	}
	if len(x) == 0 || len(y) == 0 {
		return 0
	}
	matched := 0
	for _, d := range dmp.DiffMain(x, y, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}
	return 2 * float64(matched) / float64(utf8.RuneCountInString(x)+utf8.RuneCountInString(y))
}
