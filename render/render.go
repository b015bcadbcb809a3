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

// Package render lays comparison records out as styled paragraphs.
//
// The layout mirrors the revised document: each paragraph of the revised document becomes one
// output paragraph holding its sentences as styled text runs, and every deleted sentence becomes
// a standalone struck-through paragraph at the point of the change list where it occurs. Writers
// for concrete formats (Word documents, HTML) consume the layout and map styles to their own
// styling vocabulary.
package render

import (
	"github.com/sotang85/word-file-check/compare"
)

// Style classifies a text run for highlighting.
type Style int

const (
	// StylePlain is unstyled carried-over text.
	StylePlain Style = iota
	// StyleDeleted marks text present only in the original document; rendered struck through.
	StyleDeleted
	// StyleInserted marks text present only in the revised document; rendered underlined.
	StyleInserted
	// StyleChanged marks edited tokens inside a modified sentence; rendered highlighted.
	StyleChanged
)

// A Run is a span of text with a single style.
type Run struct {
	Text  string
	Style Style
}

// A Paragraph is an ordered sequence of runs. Runs may contain newline characters; writers
// translate those into line breaks within the paragraph.
type Paragraph struct {
	Runs []Run
}

// nbsp keeps otherwise empty deleted paragraphs visible in rendered output.
const nbsp = " "

// Layout converts a comparison run's records into styled paragraphs.
//
// Unchanged, inserted, and modified sentences land in the paragraph of the revised document they
// belong to, with their prefix and postfix reproduced as plain runs so paragraph text stays
// intact. Modified sentences are rendered from the revised side with edited tokens highlighted;
// numeric-changed tokens carry their delta annotation inline. Deleted sentences have no revised
// paragraph and come out as standalone struck-through paragraphs in change-list order.
func Layout(recs []compare.Record) []Paragraph {
	d := newDoc()
	for _, r := range recs {
		switch r.Op {
		case compare.Deleted:
			p := d.appendParagraph()
			p.add(r.A.Prefix, StylePlain)
			p.add(r.A.Text, StyleDeleted)
			p.add(r.A.Postfix, StylePlain)
			if len(p.Runs) == 0 {
				p.add(nbsp, StylePlain)
			}
		case compare.Inserted:
			p := d.ensureParagraph(r.B.Paragraph)
			p.add(r.B.Prefix, StylePlain)
			p.add(r.B.Text, StyleInserted)
			p.add(r.B.Postfix, StylePlain)
		case compare.Unchanged:
			p := d.ensureParagraph(r.B.Paragraph)
			p.add(r.B.Prefix, StylePlain)
			p.add(r.B.Text, StylePlain)
			p.add(r.B.Postfix, StylePlain)
		case compare.Modified:
			p := d.ensureParagraph(r.B.Paragraph)
			p.add(r.B.Prefix, StylePlain)
			for _, e := range r.Words {
				switch e.Tag {
				case compare.TagKept:
					p.add(e.Revised, StylePlain)
				case compare.TagInserted:
					p.add(e.Revised, StyleChanged)
				case compare.TagNumericChanged:
					text := e.Revised
					if e.Delta != nil && !e.Delta.IsZero() {
						text += " (Δ " + e.DeltaString() + ")"
					}
					p.add(text, StyleChanged)
				}
			}
			p.add(r.B.Postfix, StylePlain)
		}
	}
	out := make([]Paragraph, len(d.paragraphs))
	for i, p := range d.paragraphs {
		out[i] = *p
	}
	return out
}

// doc accumulates paragraphs in output order. Revised-document paragraphs are created on demand
// up to the highest index seen, so gaps (paragraphs whose sentences were all deleted) still
// occupy a position; deleted sentences get fresh uncached paragraphs.
type doc struct {
	paragraphs []*Paragraph
	byIndex    map[int]*Paragraph
	highest    int
}

func newDoc() *doc {
	return &doc{byIndex: make(map[int]*Paragraph), highest: -1}
}

func (d *doc) appendParagraph() *Paragraph {
	p := &Paragraph{}
	d.paragraphs = append(d.paragraphs, p)
	return p
}

func (d *doc) ensureParagraph(idx int) *Paragraph {
	if p, ok := d.byIndex[idx]; ok {
		return p
	}
	for d.highest < idx {
		d.highest++
		d.byIndex[d.highest] = d.appendParagraph()
	}
	return d.byIndex[idx]
}

func (p *Paragraph) add(text string, style Style) {
	if text == "" {
		return
	}
	p.Runs = append(p.Runs, Run{Text: text, Style: style})
}
