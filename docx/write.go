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

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sotang85/word-file-check/render"
)

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/><Default Extension="xml" ContentType="application/xml"/><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>
`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"><Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/></Relationships>
`

const documentHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`

const documentFooter = `</w:body></w:document>
`

// WriteFile writes styled paragraphs as a Word document at path.
func WriteFile(path string, paragraphs []render.Paragraph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	if err := Write(f, paragraphs); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Write serializes styled paragraphs as a Word document: one body paragraph per layout
// paragraph, run styles mapped to strikethrough, underline, and yellow highlight.
func Write(w io.Writer, paragraphs []render.Paragraph) error {
	body, err := documentXML(paragraphs)
	if err != nil {
		return err
	}
	zw := zip.NewWriter(w)
	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{documentPart, body},
	}
	for _, part := range parts {
		pw, err := zw.Create(part.name)
		if err != nil {
			return fmt.Errorf("creating part %s: %w", part.name, err)
		}
		if _, err := io.WriteString(pw, part.content); err != nil {
			return fmt.Errorf("writing part %s: %w", part.name, err)
		}
	}
	return zw.Close()
}

func documentXML(paragraphs []render.Paragraph) (string, error) {
	var b strings.Builder
	b.WriteString(documentHeader)
	for _, p := range paragraphs {
		b.WriteString("<w:p>")
		for _, r := range p.Runs {
			if err := writeRun(&b, r); err != nil {
				return "", err
			}
		}
		b.WriteString("</w:p>")
	}
	b.WriteString(documentFooter)
	return b.String(), nil
}

func writeRun(b *strings.Builder, r render.Run) error {
	b.WriteString("<w:r>")
	b.WriteString(runProps(r.Style))
	for i, seg := range strings.Split(r.Text, "\n") {
		if i > 0 {
			b.WriteString("<w:br/>")
		}
		if seg == "" {
			continue
		}
		b.WriteString(`<w:t xml:space="preserve">`)
		if err := xml.EscapeText(b, []byte(seg)); err != nil {
			return fmt.Errorf("escaping run text: %w", err)
		}
		b.WriteString("</w:t>")
	}
	b.WriteString("</w:r>")
	return nil
}

func runProps(s render.Style) string {
	switch s {
	case render.StyleDeleted:
		return "<w:rPr><w:strike/></w:rPr>"
	case render.StyleInserted:
		return `<w:rPr><w:u w:val="single"/></w:rPr>`
	case render.StyleChanged:
		return `<w:rPr><w:highlight w:val="yellow"/></w:rPr>`
	default:
		return ""
	}
}
