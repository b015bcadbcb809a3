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
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sotang85/word-file-check/internal/config"
	"github.com/sotang85/word-file-check/sentence"
)

// aligner walks two sentence sequences with one pointer each and emits a record per step. All
// tie-breaks are deterministic so that identical inputs always produce identical output.
type aligner struct {
	cfg    config.Config
	a, b   []sentence.Sentence
	ka, kb []string // comparison keys, same indexes as a and b
	dmp    *diffmatchpatch.DiffMatchPatch
	sims   map[[2]int]float64
}

func newAligner(a, b []sentence.Sentence, cfg config.Config) *aligner {
	ka := make([]string, len(a))
	for i, s := range a {
		ka[i] = normalize(s.Text, cfg)
	}
	kb := make([]string, len(b))
	for j, s := range b {
		kb[j] = normalize(s.Text, cfg)
	}
	return &aligner{
		cfg:  cfg,
		a:    a,
		b:    b,
		ka:   ka,
		kb:   kb,
		dmp:  newDiffer(),
		sims: make(map[[2]int]float64),
	}
}

// run drives the alignment state machine:
//
//  1. Equal comparison keys at the pointers yield an unchanged record, both pointers advance.
//  2. Otherwise the best-scoring pair within the look-ahead window is located; if it reaches the
//     threshold, sentences skipped on the way to it come out as deleted/inserted and the pair
//     itself as modified (or unchanged, when the pair's keys are equal).
//  3. With no viable pair in the window, the pointer whose sentence has the lower best-available
//     similarity advances, A first on ties.
//  4. Once a sequence is exhausted the rest of the other one is deleted/inserted wholesale.
func (al *aligner) run() []Record {
	var recs []Record
	i, j := 0, 0
	for i < len(al.a) || j < len(al.b) {
		switch {
		case i >= len(al.a):
			recs = append(recs, al.inserted(j))
			j++
		case j >= len(al.b):
			recs = append(recs, al.deleted(i))
			i++
		case al.ka[i] == al.kb[j]:
			recs = append(recs, al.unchanged(i, j))
			i, j = i+1, j+1
		default:
			bi, bj, best := al.bestCandidate(i, j)
			if best >= al.cfg.Threshold {
				for ; i < bi; i++ {
					recs = append(recs, al.deleted(i))
				}
				for ; j < bj; j++ {
					recs = append(recs, al.inserted(j))
				}
				if al.ka[bi] == al.kb[bj] {
					recs = append(recs, al.unchanged(bi, bj))
				} else {
					recs = append(recs, al.modified(bi, bj, best))
				}
				i, j = bi+1, bj+1
			} else if al.bestForA(i, j) <= al.bestForB(i, j) {
				recs = append(recs, al.deleted(i))
				i++
			} else {
				recs = append(recs, al.inserted(j))
				j++
			}
		}
	}
	return recs
}

// bestCandidate returns the pair within the look-ahead window that maximizes similarity.
// Candidates are visited by increasing combined distance from (i, j) and, within the same
// distance, by increasing A offset; a later candidate replaces an earlier one only with a
// strictly higher score, which makes the choice deterministic.
func (al *aligner) bestCandidate(i, j int) (bi, bj int, best float64) {
	maxDi := min(al.cfg.Window, len(al.a)-i) - 1
	maxDj := min(al.cfg.Window, len(al.b)-j) - 1
	bi, bj, best = i, j, -1
	for s := 0; s <= maxDi+maxDj; s++ {
		for di := max(0, s-maxDj); di <= min(maxDi, s); di++ {
			dj := s - di
			if v := al.sim(i+di, j+dj); v > best {
				bi, bj, best = i+di, j+dj, v
			}
		}
	}
	return bi, bj, best
}

// bestForA is the best similarity A[i] reaches within B's window.
func (al *aligner) bestForA(i, j int) float64 {
	best := 0.0
	for dj := 0; dj < min(al.cfg.Window, len(al.b)-j); dj++ {
		if v := al.sim(i, j+dj); v > best {
			best = v
		}
	}
	return best
}

// bestForB is the best similarity B[j] reaches within A's window.
func (al *aligner) bestForB(i, j int) float64 {
	best := 0.0
	for di := 0; di < min(al.cfg.Window, len(al.a)-i); di++ {
		if v := al.sim(i+di, j); v > best {
			best = v
		}
	}
	return best
}

// sim memoizes pairwise similarity; the windows of consecutive steps overlap heavily.
func (al *aligner) sim(i, j int) float64 {
	key := [2]int{i, j}
	if v, ok := al.sims[key]; ok {
		return v
	}
	v := ratio(al.dmp, al.ka[i], al.kb[j])
	al.sims[key] = v
	return v
}

func (al *aligner) unchanged(i, j int) Record {
	return Record{Op: Unchanged, Similarity: 1, A: al.a[i], B: al.b[j]}
}

func (al *aligner) modified(i, j int, sim float64) Record {
	return Record{
		Op:         Modified,
		Similarity: sim,
		A:          al.a[i],
		B:          al.b[j],
		Words:      wordDiff(al.a[i].Text, al.b[j].Text, al.cfg),
	}
}

func (al *aligner) deleted(i int) Record {
	return Record{Op: Deleted, A: al.a[i]}
}

func (al *aligner) inserted(j int) Record {
	return Record{Op: Inserted, B: al.b[j]}
}
