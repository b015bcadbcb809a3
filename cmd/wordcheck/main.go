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

// Command wordcheck compares two documents at sentence level and reports every change.
//
// Inputs are Word documents (.docx) or plain text files, one paragraph per line. Output is any
// combination of a highlighted Word document (--out), a CSV change report (--csv), and an HTML
// rendering (--html); with no output flag the CSV report goes to standard output.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/sotang85/word-file-check/compare"
	"github.com/sotang85/word-file-check/docx"
	"github.com/sotang85/word-file-check/render"
	"github.com/sotang85/word-file-check/report"
	"github.com/sotang85/word-file-check/sentence"
)

var cli struct {
	Source string `arg:"" type:"existingfile" help:"Original document (.docx or plain text)."`
	Target string `arg:"" type:"existingfile" help:"Revised document (.docx or plain text)."`

	Out       string   `type:"path" help:"Path for the highlighted Word output."`
	CSV       string   `name:"csv" type:"path" help:"Path for the CSV change report."`
	HTML      string   `name:"html" type:"path" help:"Path for the HTML rendering."`
	Ignore    []string `help:"Ignore rules applied before comparing (punct, space)."`
	Threshold float64  `default:"0.8" help:"Similarity threshold in [0, 1] separating modified sentences from unrelated ones."`
	Window    int      `default:"10" help:"Aligner look-ahead window in sentences."`
	Thousands string   `default:"," help:"Thousands separator of numeric tokens."`
	Decimal   string   `default:"." help:"Decimal separator of numeric tokens."`
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("wordcheck: ")
	ctx := kong.Parse(&cli,
		kong.Name("wordcheck"),
		kong.Description("Compare two documents at sentence level and report the changes."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	opts, err := options()
	if err != nil {
		return err
	}

	source, err := load(cli.Source)
	if err != nil {
		return err
	}
	target, err := load(cli.Target)
	if err != nil {
		return err
	}

	a := sentence.Split(source)
	b := sentence.Split(target)
	recs, err := compare.Sentences(a, b, opts...)
	if err != nil {
		return err
	}

	c := report.Count(recs)
	log.Printf("compared %d against %d sentences: %d unchanged, %d modified, %d inserted, %d deleted",
		len(a), len(b), c.Unchanged, c.Modified, c.Inserted, c.Deleted)

	wrote := false
	if cli.Out != "" {
		if err := docx.WriteFile(cli.Out, render.Layout(recs)); err != nil {
			return err
		}
		log.Printf("wrote highlighted document to %s", cli.Out)
		wrote = true
	}
	if cli.CSV != "" {
		if err := writeCSVFile(cli.CSV, recs); err != nil {
			return err
		}
		log.Printf("wrote change report to %s", cli.CSV)
		wrote = true
	}
	if cli.HTML != "" {
		if err := writeHTMLFile(cli.HTML, recs); err != nil {
			return err
		}
		log.Printf("wrote rendering to %s", cli.HTML)
		wrote = true
	}
	if !wrote {
		return report.WriteCSV(os.Stdout, recs)
	}
	return nil
}

func options() ([]compare.Option, error) {
	opts := []compare.Option{
		compare.Threshold(cli.Threshold),
		compare.Window(cli.Window),
	}
	ignore, err := compare.ParseIgnore(cli.Ignore)
	if err != nil {
		return nil, err
	}
	opts = append(opts, ignore...)

	thousands, err := sepRune("--thousands", cli.Thousands)
	if err != nil {
		return nil, err
	}
	decimal, err := sepRune("--decimal", cli.Decimal)
	if err != nil {
		return nil, err
	}
	return append(opts, compare.NumericFormat(thousands, decimal)), nil
}

func sepRune(flag, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", flag, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// load reads a document's paragraphs. Word documents are unpacked; anything else is treated as
// plain text with one paragraph per line.
func load(path string) ([]sentence.Paragraph, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return docx.ReadFile(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	paras := make([]sentence.Paragraph, len(lines))
	for i, line := range lines {
		paras[i] = sentence.Paragraph{Index: i, Text: line}
	}
	return paras, nil
}

func writeCSVFile(path string, recs []compare.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return report.WriteCSV(f, recs)
}

func writeHTMLFile(path string, recs []compare.Record) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return render.WriteHTML(f, render.Layout(recs))
}
