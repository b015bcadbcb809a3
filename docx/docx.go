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

// Package docx reads paragraph text from Word documents and writes styled comparison output back
// to the same format.
//
// Reading covers the parts the comparison needs: body paragraphs in document order, with table
// cell paragraphs carrying their table coordinates, line breaks as "\n", and tabs as "\t". Styling
// of the input is ignored. Writing produces a minimal single-part document from styled paragraphs.
package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/sotang85/word-file-check/sentence"
)

// documentPart is the zip entry holding the document body.
const documentPart = "word/document.xml"

// ReadFile extracts the paragraphs of a Word document.
func ReadFile(path string) ([]sentence.Paragraph, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer zr.Close()
	paras, err := read(&zr.Reader)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return paras, nil
}

// Read extracts the paragraphs of a Word document from an in-memory or seekable source.
func Read(r io.ReaderAt, size int64) ([]sentence.Paragraph, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening document archive: %w", err)
	}
	return read(zr)
}

func read(zr *zip.Reader) ([]sentence.Paragraph, error) {
	f, err := zr.Open(documentPart)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", documentPart, err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", documentPart, err)
	}
	body := xmlquery.FindOne(doc, "//w:body")
	if body == nil {
		return nil, errors.New("document has no body")
	}

	var paras []sentence.Paragraph
	table := 0
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != xmlquery.ElementNode {
			continue
		}
		switch n.Data {
		case "p":
			paras = append(paras, sentence.Paragraph{
				Index: len(paras),
				Text:  paragraphText(n),
			})
		case "tbl":
			paras = appendTable(paras, n, table)
			table++
		}
	}
	return paras, nil
}

// appendTable flattens a table into cell paragraphs tagged with their coordinates. Cell text
// takes part in the comparison like body text; the table structure itself is not compared.
func appendTable(paras []sentence.Paragraph, tbl *xmlquery.Node, table int) []sentence.Paragraph {
	row := 0
	for tr := tbl.FirstChild; tr != nil; tr = tr.NextSibling {
		if tr.Type != xmlquery.ElementNode || tr.Data != "tr" {
			continue
		}
		cell := 0
		for tc := tr.FirstChild; tc != nil; tc = tc.NextSibling {
			if tc.Type != xmlquery.ElementNode || tc.Data != "tc" {
				continue
			}
			for p := tc.FirstChild; p != nil; p = p.NextSibling {
				if p.Type != xmlquery.ElementNode || p.Data != "p" {
					continue
				}
				paras = append(paras, sentence.Paragraph{
					Index:   len(paras),
					Text:    paragraphText(p),
					InTable: true,
					Table:   table,
					Row:     row,
					Cell:    cell,
				})
			}
			cell++
		}
		row++
	}
	return paras
}

// paragraphText concatenates a paragraph's visible text. Breaks and carriage returns come out as
// newlines, tabs as tab characters.
func paragraphText(p *xmlquery.Node) string {
	var b strings.Builder
	collectText(&b, p)
	return b.String()
}

func collectText(b *strings.Builder, n *xmlquery.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		switch c.Data {
		case "t":
			b.WriteString(c.InnerText())
		case "br", "cr":
			b.WriteString("\n")
		case "tab":
			b.WriteString("\t")
		default:
			collectText(b, c)
		}
	}
}
