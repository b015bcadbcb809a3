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

// Package sentence defines the sentence values the comparison engine operates on and splits
// paragraph text into them.
package sentence

// A Paragraph is one block of text extracted from a document, in document order. Paragraphs that
// originate from table cells carry their table coordinates so renderers can tell them apart from
// body text.
type Paragraph struct {
	Index int    // position in the source document
	Text  string // paragraph text with carriage returns already removed

	InTable          bool
	Table, Row, Cell int // valid only when InTable is set
}

// A Sentence is a single unit of text extracted from a document, in original document order.
// Sentences are immutable once extracted.
//
// Text is the trimmed sentence content, byte for byte from the source. Prefix and Postfix hold
// surrounding characters (inter-sentence whitespace, shed terminators) that belong to this
// sentence when its paragraph is reassembled from Prefix+Text+Postfix runs.
type Sentence struct {
	Index     int    // position in the document's sentence sequence
	Text      string // sentence content
	Paragraph int    // index of the paragraph this sentence came from
	Ordinal   int    // position of the sentence within its paragraph
	Prefix    string
	Postfix   string
}

// Split segments paragraphs into sentences, numbering them consecutively across the whole
// document. Paragraphs that contain no sentence content are skipped.
func Split(paragraphs []Paragraph) []Sentence {
	var sentences []Sentence
	idx := 0
	for _, p := range paragraphs {
		segs := segments(p.Text)
		for ord, seg := range segs {
			if seg.text == "" {
				continue
			}
			sentences = append(sentences, Sentence{
				Index:     idx,
				Text:      seg.text,
				Paragraph: p.Index,
				Ordinal:   ord,
				Prefix:    seg.prefix,
				Postfix:   seg.postfix,
			})
			idx++
		}
	}
	return sentences
}
