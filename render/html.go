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

package render

import (
	"fmt"
	"html"
	"io"
	"strings"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Comparison</title>
<style>
body { font-family: sans-serif; max-width: 50rem; margin: 2rem auto; line-height: 1.6; }
del { color: #993333; }
ins { text-decoration: underline; }
mark { background: #ffef99; }
</style>
</head>
<body>
`

const htmlFooter = `</body>
</html>
`

// WriteHTML renders paragraphs as a standalone HTML page. Deleted runs become <del>, inserted
// runs <ins>, changed runs <mark>; newlines inside a run become <br> elements.
func WriteHTML(w io.Writer, paragraphs []Paragraph) error {
	var b strings.Builder
	b.WriteString(htmlHeader)
	for _, p := range paragraphs {
		b.WriteString("<p>")
		for _, r := range p.Runs {
			text := html.EscapeString(r.Text)
			text = strings.ReplaceAll(text, "\n", "<br>")
			switch r.Style {
			case StyleDeleted:
				b.WriteString("<del>" + text + "</del>")
			case StyleInserted:
				b.WriteString("<ins>" + text + "</ins>")
			case StyleChanged:
				b.WriteString("<mark>" + text + "</mark>")
			default:
				b.WriteString(text)
			}
		}
		b.WriteString("</p>\n")
	}
	b.WriteString(htmlFooter)
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing html: %w", err)
	}
	return nil
}
