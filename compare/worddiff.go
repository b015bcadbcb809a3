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

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sotang85/word-file-check/internal/config"
)

// wordDiff computes the word-level edit script of a modified sentence pair. Both sides are
// tokenized, each distinct token is interned as a single rune, and the rune strings are diffed
// character-wise, which yields a minimal token alignment. Adjacent removed/inserted pairs of
// numeric tokens are then folded into numeric-changed edits.
func wordDiff(original, revised string, cfg config.Config) []WordEdit {
	ta := tokenize(original, cfg.Thousands, cfg.Decimal)
	tb := tokenize(revised, cfg.Thousands, cfg.Decimal)

	in := newInterner()
	ea := in.encode(ta)
	eb := in.encode(tb)

	dmp := newDiffer()
	var edits []WordEdit
	for _, d := range dmp.DiffMain(ea, eb, false) {
		for _, r := range d.Text {
			tok := in.token(r)
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				edits = append(edits, WordEdit{
					Tag:      TagKept,
					Original: tok,
					Revised:  tok,
					Numeric:  numericLike(tok, cfg.Thousands, cfg.Decimal),
				})
			case diffmatchpatch.DiffDelete:
				edits = append(edits, WordEdit{
					Tag:      TagRemoved,
					Original: tok,
					Numeric:  numericLike(tok, cfg.Thousands, cfg.Decimal),
				})
			case diffmatchpatch.DiffInsert:
				edits = append(edits, WordEdit{
					Tag:     TagInserted,
					Revised: tok,
					Numeric: numericLike(tok, cfg.Thousands, cfg.Decimal),
				})
			}
		}
	}
	return foldNumeric(edits, cfg)
}

// foldNumeric re-tags each removed numeric token immediately followed by an inserted numeric
// token as a single numeric-changed pair, attaching the signed delta when both sides parse.
func foldNumeric(edits []WordEdit, cfg config.Config) []WordEdit {
	out := make([]WordEdit, 0, len(edits))
	for k := 0; k < len(edits); k++ {
		e := edits[k]
		if e.Tag == TagRemoved && e.Numeric && k+1 < len(edits) &&
			edits[k+1].Tag == TagInserted && edits[k+1].Numeric {
			merged := WordEdit{
				Tag:      TagNumericChanged,
				Original: e.Original,
				Revised:  edits[k+1].Revised,
				Numeric:  true,
			}
			ov, okA := parseNumber(merged.Original, cfg.Thousands, cfg.Decimal)
			rv, okB := parseNumber(merged.Revised, cfg.Thousands, cfg.Decimal)
			if okA && okB {
				delta := rv.Sub(ov)
				merged.Delta = &delta
			}
			out = append(out, merged)
			k++
			continue
		}
		out = append(out, e)
	}
	return out
}

// interner assigns each distinct token a rune from the Unicode private use areas so that a token
// sequence can be diffed as a string.
type interner struct {
	ids    map[string]rune
	tokens []string
}

func newInterner() *interner {
	return &interner{ids: make(map[string]rune)}
}

// The BMP private use area holds 6400 runes; token vocabularies beyond that spill into the
// supplementary private use planes.
const (
	puaBase    = 0xE000
	puaSize    = 0xF8FF - 0xE000 + 1
	puaExtBase = 0xF0000
)

func (in *interner) encode(tokens []string) string {
	var b strings.Builder
	for _, tok := range tokens {
		id, ok := in.ids[tok]
		if !ok {
			n := len(in.tokens)
			if n < puaSize {
				id = rune(puaBase + n)
			} else {
				id = rune(puaExtBase + n - puaSize)
			}
			in.ids[tok] = id
			in.tokens = append(in.tokens, tok)
		}
		b.WriteRune(id)
	}
	return b.String()
}

func (in *interner) token(r rune) string {
	if r >= puaExtBase {
		return in.tokens[int(r-puaExtBase)+puaSize]
	}
	return in.tokens[r-puaBase]
}
