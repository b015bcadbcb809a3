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

	"github.com/sotang85/word-file-check/internal/config"
)

// ignoredPunct is the punctuation removed under the punct ignore rule: ASCII punctuation plus the
// typographic and fullwidth CJK marks that show up in the documents this tool compares.
const ignoredPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	"“”‘’‚‛„‟‹›«»、，；：·…‧〈〉《》「」『』【】〔〕（）［］｛｝()[]{}<>？！。．﹒﹔﹖﹗"

// normalize reduces a raw sentence to its comparison key under the active ignore rules.
// Punctuation is removed first (not replaced with a space), then whitespace runs collapse to a
// single space with leading and trailing whitespace trimmed. Casing is never changed. An empty
// result is a valid key.
func normalize(text string, cfg config.Config) string {
	if cfg.IgnorePunct {
		text = strings.Map(func(r rune) rune {
			if strings.ContainsRune(ignoredPunct, r) {
				return -1
			}
			return r
		}, text)
	}
	if cfg.IgnoreSpace {
		text = strings.Join(strings.Fields(text), " ")
	}
	return text
}
