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

package sentence

import (
	"strings"
	"unicode"
)

// terminators end a sentence when followed by whitespace or the end of the paragraph. Both ASCII
// and fullwidth CJK terminators are recognized.
const terminators = ".!?。！？"

type segment struct {
	prefix  string
	text    string
	postfix string
}

// segments splits a paragraph into sentence segments. A sentence is a run of characters up to a
// terminator run that is followed by whitespace or the paragraph end; text that never satisfies
// that (a trailing fragment, a paragraph without terminators) forms a segment of its own. The
// prefix and postfix capture everything around the sentence content so that
// prefix+text+postfix per segment covers the whole paragraph.
func segments(text string) []segment {
	cleaned := []rune(strings.ReplaceAll(text, "\r", ""))

	spans := sentenceSpans(cleaned)
	if len(spans) == 0 {
		stripped := strings.TrimSpace(string(cleaned))
		if stripped == "" {
			return nil
		}
		lead := countLeadingSpace(cleaned)
		trail := countTrailingSpace(cleaned)
		return []segment{{
			prefix:  string(cleaned[:lead]),
			text:    stripped,
			postfix: string(cleaned[len(cleaned)-trail:]),
		}}
	}

	var segs []segment
	cursor := 0
	for _, sp := range spans {
		var prefix string
		if cursor < sp.start {
			prefix = string(cleaned[cursor:sp.start])
		}
		content := cleaned[sp.start:sp.end]
		lead := countLeadingSpace(content)
		// The trailing cut equals the leading whitespace count, so a sentence preceded by
		// whitespace sheds that many characters (typically its terminator) into the postfix.
		trail := lead
		core := ""
		if len(content)-trail > lead {
			core = string(content[lead : len(content)-trail])
		}
		trailing := ""
		if trail > 0 {
			trailing = string(content[len(content)-trail:])
		}

		followEnd := sp.end
		for followEnd < len(cleaned) && unicode.IsSpace(cleaned[followEnd]) {
			followEnd++
		}
		followWS := string(cleaned[sp.end:followEnd])
		cursor = followEnd

		segs = append(segs, segment{
			prefix:  prefix + string(content[:lead]),
			text:    strings.TrimSpace(core),
			postfix: trailing + followWS,
		})
	}

	if cursor < len(cleaned) && len(segs) > 0 {
		segs[len(segs)-1].postfix += string(cleaned[cursor:])
	}
	return segs
}

type span struct{ start, end int }

// sentenceSpans finds the sentence matches in a paragraph. A match is a non-empty run of
// characters other than newlines and terminators, followed by either a terminator run whose next
// character is whitespace or the end, or by the paragraph end itself.
func sentenceSpans(runes []rune) []span {
	var spans []span
	n := len(runes)
	start := 0
	for start < n {
		end, ok := matchAt(runes, start)
		if !ok {
			start++
			continue
		}
		spans = append(spans, span{start, end})
		start = end
	}
	return spans
}

func matchAt(runes []rune, start int) (end int, ok bool) {
	n := len(runes)
	pos := start
	for pos < n && runes[pos] != '\n' && !isTerminator(runes[pos]) {
		pos++
	}
	if pos == start {
		return 0, false
	}
	bodyEnd := pos
	termEnd := bodyEnd
	for termEnd < n && isTerminator(runes[termEnd]) {
		termEnd++
	}
	if termEnd > bodyEnd {
		if termEnd == n || unicode.IsSpace(runes[termEnd]) {
			return termEnd, true
		}
		return 0, false
	}
	// No terminator: the body ran into a newline or the end of the paragraph.
	if bodyEnd == n || (bodyEnd == n-1 && runes[bodyEnd] == '\n') {
		return bodyEnd, true
	}
	return 0, false
}

func isTerminator(r rune) bool {
	return strings.ContainsRune(terminators, r)
}

func countLeadingSpace(runes []rune) int {
	i := 0
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return i
}

func countTrailingSpace(runes []rune) int {
	i := 0
	for i < len(runes) && unicode.IsSpace(runes[len(runes)-1-i]) {
		i++
	}
	return i
}
